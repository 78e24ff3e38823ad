package ui

import (
	"github.com/charmbracelet/lipgloss"

	"logmux/internal/model"
)

type uiStyles struct {
	header   lipgloss.Style
	meta     lipgloss.Style
	panel    lipgloss.Style
	status   lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	good     lipgloss.Style
	warn     lipgloss.Style
	bad      lipgloss.Style
	severity map[model.Severity]lipgloss.Style
}

func buildStyles(noColor bool) uiStyles {
	if noColor {
		border := lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		}
		plain := lipgloss.NewStyle()
		sev := make(map[model.Severity]lipgloss.Style)
		for s := model.SeveritySilent; s <= model.SeverityVerbose; s++ {
			sev[s] = plain
		}
		return uiStyles{
			header:   lipgloss.NewStyle().Bold(true),
			meta:     plain,
			panel:    lipgloss.NewStyle().Padding(0, 1).Border(border),
			status:   lipgloss.NewStyle().Padding(0, 1).Border(border),
			accent:   plain,
			muted:    plain,
			good:     plain,
			warn:     plain,
			bad:      plain,
			severity: sev,
		}
	}

	border := lipgloss.Border{
		Top: "─", Bottom: "─", Left: "│", Right: "│",
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
	}
	primary := lipgloss.Color("#22D3EE")
	muted := lipgloss.Color("#94A3B8")
	good := lipgloss.Color("#10B981")
	warn := lipgloss.Color("#FBBF24")
	bad := lipgloss.Color("#F87171")

	sev := map[model.Severity]lipgloss.Style{
		model.SeveritySilent:  lipgloss.NewStyle().Foreground(muted),
		model.SeverityFatal:   lipgloss.NewStyle().Foreground(bad).Bold(true),
		model.SeverityError:   lipgloss.NewStyle().Foreground(bad),
		model.SeverityWarning: lipgloss.NewStyle().Foreground(warn),
		model.SeverityNotice:  lipgloss.NewStyle().Foreground(primary),
		model.SeverityTrace:   lipgloss.NewStyle().Foreground(muted),
		model.SeverityVerbose: lipgloss.NewStyle().Foreground(muted),
	}

	return uiStyles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(primary),
		meta:     lipgloss.NewStyle().Foreground(muted),
		panel:    lipgloss.NewStyle().Padding(0, 1).Border(border).BorderForeground(primary),
		status:   lipgloss.NewStyle().Padding(0, 1).Border(border).BorderForeground(muted),
		accent:   lipgloss.NewStyle().Foreground(primary).Bold(true),
		muted:    lipgloss.NewStyle().Foreground(muted),
		good:     lipgloss.NewStyle().Foreground(good).Bold(true),
		warn:     lipgloss.NewStyle().Foreground(warn).Bold(true),
		bad:      lipgloss.NewStyle().Foreground(bad).Bold(true),
		severity: sev,
	}
}
