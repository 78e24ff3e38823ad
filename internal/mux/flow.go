package mux

import "fmt"

// Pause diverts incoming bytes into the bounded pause buffer until Resume,
// an XON control byte, or the pause timeout.
func (m *Multiplexer) Pause() {
	m.paused = true
	m.pauseStarted = m.now()
}

// Resume replays buffered bytes through the normal ingest path in FIFO
// order, then continues live ingestion.
func (m *Multiplexer) Resume() {
	if !m.paused {
		return
	}
	m.paused = false
	m.drainPauseBuffer()
}

func (m *Multiplexer) Paused() bool {
	return m.paused
}

func (m *Multiplexer) drainPauseBuffer() {
	for {
		b, ok := m.pauseBuf.Get()
		if !ok {
			return
		}
		m.Write(b)
	}
}

// Service runs one cooperative tick: drains and discards any inbound bytes
// on the HTTP connection (capped per tick to bound latency), applies
// XON/XOFF flow control, and enforces the pause timeout so a lost resume
// signal cannot silence logging forever. Pass control byte 0 when no flow
// signal is pending.
func (m *Multiplexer) Service(control byte) {
	if m.client != nil && m.client.Connected() {
		if avail := m.client.Available(); avail > 0 {
			n := avail
			if n > len(m.rxBuf) {
				n = len(m.rxBuf)
			}
			m.client.Read(m.rxBuf[:n])
		}
	}

	switch control {
	case XOFF:
		m.Pause()
	case XON:
		m.Resume()
	}

	if m.paused && m.now().Sub(m.pauseStarted) >= m.pauseTimeout {
		m.Resume()
	}
}

// diag emits the multiplexer's own notices to the primary sink. While
// paused the bytes go through the pause buffer like any other output.
func (m *Multiplexer) diag(format string, args ...any) {
	if !m.diagnostics {
		return
	}
	msg := "logmux: " + fmt.Sprintf(format, args...) + "\n"
	for i := 0; i < len(msg); i++ {
		if m.paused {
			if !m.pauseBuf.Put(msg[i]) {
				m.stats.PauseDrops++
			}
			continue
		}
		_ = m.out.WriteByte(msg[i])
	}
}
