package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"logmux/internal/engine"
)

func scheduleTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func requestSnapshot(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		eng.SnapshotReqCh() <- engine.SnapshotRequest{}
		return snapshotMsg(<-eng.SnapshotRespCh())
	}
}

func sendCommand(eng *engine.Engine, cmd engine.Command) tea.Cmd {
	return func() tea.Msg {
		cmd.RespCh = make(chan engine.CommandResult, 1)
		eng.CmdCh() <- cmd
		return cmdResultMsg(<-cmd.RespCh)
	}
}
