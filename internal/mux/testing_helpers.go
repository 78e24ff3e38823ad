package mux

import "time"

// TestSetNow overrides the clock used for pause timeout checks.
func (m *Multiplexer) TestSetNow(now func() time.Time) {
	m.now = now
}

// TestSetPauseTimeout overrides the pause timeout.
func (m *Multiplexer) TestSetPauseTimeout(timeout time.Duration) {
	m.pauseTimeout = timeout
}
