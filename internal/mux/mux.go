package mux

import (
	"io"
	"time"

	"logmux/internal/assembler"
	"logmux/internal/config"
	"logmux/internal/model"
	"logmux/internal/router"
	"logmux/internal/store"
)

// Flow control bytes recognized by Service.
const (
	XOFF byte = 0x13
	XON  byte = 0x11
)

// Multiplexer is the composition root of the log stream. Bytes arrive one
// at a time through Write; each byte is forwarded to the primary sink
// (or buffered while paused), fed through the line assembler, and completed
// lines are fanned out by the router.
//
// The Multiplexer is single-owner: Write, Service and the setters must be
// called from one goroutine. No locks are taken anywhere on the byte path.
type Multiplexer struct {
	out     io.ByteWriter
	asm     *assembler.Assembler
	router  *router.Router
	client  router.NetClient
	persist config.Store
	limits  config.Limits

	systemName string
	serialOn   bool
	serialPort int

	paused       bool
	pauseStarted time.Time
	pauseTimeout time.Duration
	pauseBuf     *store.ByteRing
	rxBuf        []byte

	diagnostics bool
	now         func() time.Time
	onLine      func(model.LogLine)

	stats Stats
}

func New(out io.ByteWriter, publish router.PublishChannel, command router.CommandChannel, client router.NetClient, limits config.Limits) *Multiplexer {
	m := &Multiplexer{
		out:          out,
		asm:          assembler.New(limits.LineMaxLen),
		router:       router.New(publish, command, client),
		client:       client,
		limits:       limits,
		serialOn:     limits.DefaultSerialOn,
		serialPort:   limits.DefaultSerialPort,
		pauseTimeout: limits.PauseTimeout,
		pauseBuf:     store.NewByteRing(limits.PauseBufferBytes),
		rxBuf:        make([]byte, limits.RxDrainMaxBytes),
		now:          time.Now,
	}
	m.router.SetDiag(m.diag)
	return m
}

// Write ingests one byte. It never blocks beyond the router's synchronous
// send attempts and never returns an error: transport and capacity
// failures are absorbed and counted.
func (m *Multiplexer) Write(b byte) {
	if m.paused {
		if !m.pauseBuf.Put(b) {
			m.stats.PauseDrops++
		}
		return
	}

	_ = m.out.WriteByte(b)
	m.stats.BytesIn++

	// Line assembly only pays off when a structured sink can receive the
	// result.
	if !m.router.AnyStructured() {
		return
	}
	line, ok := m.asm.Feed(b)
	if !ok {
		return
	}
	m.router.Dispatch(line)
	m.stats.LinesOut++
	if m.onLine != nil {
		m.onLine(line)
	}
}

// WriteString ingests every byte of s in order.
func (m *Multiplexer) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		m.Write(s[i])
	}
}

// SetOnLine installs a hook invoked after each dispatched line. The hook
// runs on the ingest path and must not block.
func (m *Multiplexer) SetOnLine(fn func(model.LogLine)) {
	m.onLine = fn
}

// SetDiagnostics toggles the multiplexer's own one-line notices on the
// primary sink.
func (m *Multiplexer) SetDiagnostics(on bool) {
	m.diagnostics = on
}

func (m *Multiplexer) Threshold() model.Severity {
	return m.asm.Threshold()
}

func (m *Multiplexer) RouterConfig() router.Config {
	return m.router.Config()
}

func (m *Multiplexer) SerialConfig() (enabled bool, port int) {
	return m.serialOn, m.serialPort
}

func (m *Multiplexer) SystemName() string {
	return m.systemName
}
