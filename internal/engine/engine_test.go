package engine

import (
	"testing"

	"logmux/internal/config"
	"logmux/internal/model"
	"logmux/internal/mux"
)

type nullSink struct{}

func (nullSink) WriteByte(b byte) error { return nil }

type capturePublish struct {
	payloads []string
}

func (c *capturePublish) Publish(topic, payload string) {
	c.payloads = append(c.payloads, payload)
}

func newTestEngine() (*Engine, *capturePublish) {
	limits := config.DefaultLimits()
	limits.RecentLines = 16
	pub := &capturePublish{}
	mx := mux.New(nullSink{}, pub, nil, nil, limits)
	mx.Setup(config.NewMemStore(""), "bench-1")
	return New(limits, mx), pub
}

func TestHandleCommandConfiguresSinks(t *testing.T) {
	eng, pub := newTestEngine()

	if err := eng.handleCommand(Command{Type: CommandSetMQTT, Enabled: true, Value: "devlog"}); err != nil {
		t.Fatalf("set mqtt: %v", err)
	}
	if err := eng.handleCommand(Command{Type: CommandSetLogLevel, Value: "V"}); err != nil {
		t.Fatalf("set level: %v", err)
	}

	eng.consumeChunk([]byte("Ehello\n"))
	if len(pub.payloads) != 1 {
		t.Fatalf("expected 1 dispatched line, got %d", len(pub.payloads))
	}

	snap := eng.buildSnapshot()
	if !snap.Router.MQTTEnabled || snap.Router.MQTTTopic != "devlog" {
		t.Fatalf("unexpected router config in snapshot: %+v", snap.Router)
	}
	if snap.Threshold != model.SeverityVerbose {
		t.Fatalf("expected verbose threshold, got %v", snap.Threshold)
	}
	if len(snap.Lines) != 1 || snap.Lines[0] != "Ehello" {
		t.Fatalf("expected recent line in snapshot, got %v", snap.Lines)
	}
	if snap.LineSevs[0] != model.SeverityError {
		t.Fatalf("expected error severity, got %v", snap.LineSevs[0])
	}
}

func TestHandleCommandPauseResume(t *testing.T) {
	eng, pub := newTestEngine()
	_ = eng.handleCommand(Command{Type: CommandSetMQTT, Enabled: true, Value: "t"})
	_ = eng.handleCommand(Command{Type: CommandSetLogLevel, Value: "V"})

	_ = eng.handleCommand(Command{Type: CommandPause})
	eng.consumeChunk([]byte("Wheld\n"))
	if len(pub.payloads) != 0 {
		t.Fatal("expected no dispatch while paused")
	}
	if snap := eng.buildSnapshot(); !snap.Paused || snap.PauseBuffered == 0 {
		t.Fatalf("expected paused snapshot with buffered bytes, got %+v", snap)
	}

	_ = eng.handleCommand(Command{Type: CommandResume})
	if len(pub.payloads) != 1 {
		t.Fatalf("expected buffered line dispatched on resume, got %d", len(pub.payloads))
	}
}

func TestHandleCommandUnknown(t *testing.T) {
	eng, _ := newTestEngine()
	if err := eng.handleCommand(Command{Type: CommandType(99)}); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
