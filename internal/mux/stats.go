package mux

import "logmux/internal/router"

// Stats are monotonic counters for the silent drop/truncation policies.
// They surface what the byte path absorbs without ever turning it into an
// error.
type Stats struct {
	BytesIn    uint64
	LinesOut   uint64
	PauseDrops uint64
	Truncated  uint64
	Router     router.Stats
}

func (m *Multiplexer) Stats() Stats {
	out := m.stats
	out.Truncated = m.asm.Truncated()
	out.Router = m.router.Stats()
	return out
}

// PauseBuffered reports how many bytes are currently held by the pause
// buffer.
func (m *Multiplexer) PauseBuffered() int {
	return m.pauseBuf.Len()
}
