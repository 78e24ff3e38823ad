package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	styles := buildStyles(m.noColor)
	width := m.width
	if width <= 0 {
		width = 80
	}
	innerWidth := func(style lipgloss.Style) int {
		w := width - style.GetHorizontalFrameSize()
		if w < 0 {
			return 0
		}
		return w
	}

	header := renderHeader(m, styles)
	chips := renderChips(m, styles)

	panelHeight := m.height - lipgloss.Height(header) - lipgloss.Height(chips) - 4
	if panelHeight < 3 {
		panelHeight = 3
	}
	lines := renderLines(m, styles, panelHeight)
	panel := styles.panel.Width(innerWidth(styles.panel)).Render(lines)

	status := styles.status.Width(innerWidth(styles.status)).Render(renderStatus(m, styles))

	return lipgloss.JoinVertical(lipgloss.Left, header, chips, panel, status)
}

func renderHeader(m Model, styles uiStyles) string {
	name := m.snapshot.SystemName
	if name == "" {
		name = "logmux"
	}
	left := styles.header.Render("logmux")
	right := styles.meta.Render(fmt.Sprintf("character-stream log multiplexer · %s", name))
	return lipgloss.JoinHorizontal(lipgloss.Left, left, "  ", right)
}

func renderChips(m Model, styles uiStyles) string {
	snap := m.snapshot
	flow := styles.good.Render("flowing")
	if snap.Paused {
		flow = styles.warn.Render(fmt.Sprintf("paused (%dB held)", snap.PauseBuffered))
	}
	chips := []string{
		chip(styles, "level", snap.Threshold.String()),
		chip(styles, "lines/s", fmt.Sprintf("%d", lastValue(snap.LinesPerSec))),
		chip(styles, "bytes", fmt.Sprintf("%d", snap.Stats.BytesIn)),
		chip(styles, "dispatched", fmt.Sprintf("%d", snap.Stats.LinesOut)),
		chip(styles, "conns", fmt.Sprintf("%d", snap.ActiveConns)),
		flow,
		sinkChip(styles, "mqtt", snap.Router.MQTTEnabled),
		sinkChip(styles, "http", snap.Router.HTTPEnabled),
		sinkChip(styles, "cmd", snap.Router.CmdEnabled),
	}
	return styles.meta.Render(strings.Join(chips, "  "))
}

func chip(styles uiStyles, label, value string) string {
	return styles.muted.Render(label+":") + styles.accent.Render(value)
}

func sinkChip(styles uiStyles, label string, enabled bool) string {
	if enabled {
		return styles.good.Render(label + ":on")
	}
	return styles.muted.Render(label + ":off")
}

func renderLines(m Model, styles uiStyles, height int) string {
	lines := m.snapshot.Lines
	sevs := m.snapshot.LineSevs
	if len(lines) == 0 {
		return styles.muted.Render("no dispatched lines yet")
	}

	end := len(lines)
	if !m.follow {
		end = len(lines) - m.scroll
		if end < 1 {
			end = 1
		}
	}
	start := end - height
	if start < 0 {
		start = 0
	}

	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		style, ok := styles.severity[sevs[i]]
		if !ok {
			style = styles.muted
		}
		out = append(out, style.Render(lines[i]))
	}
	return strings.Join(out, "\n")
}

func renderStatus(m Model, styles uiStyles) string {
	snap := m.snapshot
	parts := []string{
		styles.muted.Render("q quit · p pause · r resume · L level · m/h/c sinks · f follow"),
	}
	if snap.Stats.PauseDrops > 0 || snap.Stats.Truncated > 0 || snap.IngestDropped > 0 {
		parts = append(parts, styles.warn.Render(fmt.Sprintf(
			"drops: pause %d · trunc %d · ingest %d",
			snap.Stats.PauseDrops, snap.Stats.Truncated, snap.IngestDropped)))
	}
	if snap.Stats.Router.HTTPErrors > 0 {
		parts = append(parts, styles.bad.Render(fmt.Sprintf("http errors: %d", snap.Stats.Router.HTTPErrors)))
	}
	if m.lastErr != "" {
		parts = append(parts, styles.bad.Render(m.lastErr))
	}
	return strings.Join(parts, "  ")
}

func lastValue(values []uint64) uint64 {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1]
}
