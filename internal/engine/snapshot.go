package engine

import (
	"time"

	"logmux/internal/model"
)

func (e *Engine) buildSnapshot() Snapshot {
	lines, sevsRaw := e.recent.Items()
	sevs := make([]model.Severity, len(sevsRaw))
	for i, s := range sevsRaw {
		sevs[i] = model.Severity(s)
	}
	serialOn, serialPort := e.mx.SerialConfig()
	snap := Snapshot{
		SystemName:    e.mx.SystemName(),
		Stats:         e.mx.Stats(),
		Paused:        e.mx.Paused(),
		PauseBuffered: e.mx.PauseBuffered(),
		Threshold:     e.mx.Threshold(),
		Router:        e.mx.RouterConfig(),
		SerialOn:      serialOn,
		SerialPort:    serialPort,
		Lines:         lines,
		LineSevs:      sevs,
		LinesPerSec:   e.linesPerSec.Snapshot(time.Now()),
	}
	if e.serverStatsFn != nil {
		snap.ActiveConns, snap.IngestDropped = e.serverStatsFn()
	}
	return snap
}
