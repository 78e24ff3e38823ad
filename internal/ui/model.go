package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"logmux/internal/engine"
	"logmux/internal/model"
)

type tickMsg time.Time

type snapshotMsg engine.Snapshot

type cmdResultMsg engine.CommandResult

type Model struct {
	noColor  bool
	engine   *engine.Engine
	cancel   context.CancelFunc
	snapshot engine.Snapshot
	lastErr  string
	width    int
	height   int
	follow   bool
	scroll   int
}

func NewModel(noColor bool, eng *engine.Engine, cancel context.CancelFunc) Model {
	return Model{
		noColor: noColor,
		engine:  eng,
		cancel:  cancel,
		follow:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(requestSnapshot(m.engine), scheduleTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case tickMsg:
		return m, tea.Batch(requestSnapshot(m.engine), scheduleTick())
	case snapshotMsg:
		m.snapshot = engine.Snapshot(typed)
		return m, nil
	case cmdResultMsg:
		result := engine.CommandResult(typed)
		if result.Err != nil {
			m.lastErr = result.Err.Error()
		} else {
			m.lastErr = ""
		}
		return m, requestSnapshot(m.engine)
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "q":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case "p":
		return m, sendCommand(m.engine, engine.Command{Type: engine.CommandPause})
	case "r":
		return m, sendCommand(m.engine, engine.Command{Type: engine.CommandResume})
	case "L":
		next := m.snapshot.Threshold + 1
		if next > model.SeverityVerbose {
			next = model.SeveritySilent
		}
		return m, sendCommand(m.engine, engine.Command{Type: engine.CommandSetLogLevel, Value: levelCode(next)})
	case "m":
		cfg := m.snapshot.Router
		return m, sendCommand(m.engine, engine.Command{Type: engine.CommandSetMQTT, Enabled: !cfg.MQTTEnabled, Value: cfg.MQTTTopic})
	case "h":
		cfg := m.snapshot.Router
		return m, sendCommand(m.engine, engine.Command{Type: engine.CommandSetHTTP, Enabled: !cfg.HTTPEnabled})
	case "c":
		cfg := m.snapshot.Router
		return m, sendCommand(m.engine, engine.Command{Type: engine.CommandSetCmdSerial, Enabled: !cfg.CmdEnabled})
	case "f":
		m.follow = !m.follow
		return m, nil
	case "up", "k":
		m.follow = false
		m.scroll = min(m.scroll+1, max(0, len(m.snapshot.Lines)-1))
		return m, nil
	case "down", "j":
		m.scroll = max(0, m.scroll-1)
		if m.scroll == 0 {
			m.follow = true
		}
		return m, nil
	}
	return m, nil
}

func levelCode(s model.Severity) string {
	codes := [...]string{"0", "F", "E", "W", "N", "T", "V"}
	if int(s) < len(codes) {
		return codes[s]
	}
	return "0"
}
