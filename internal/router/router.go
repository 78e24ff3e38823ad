package router

import (
	"logmux/internal/model"
)

// PublishChannel delivers a pre-formatted payload best-effort, e.g. over
// MQTT. Failures are the channel's problem, never the caller's.
type PublishChannel interface {
	Publish(topic string, payload string)
}

// CommandChannel delivers a pre-formatted payload locally.
type CommandChannel interface {
	LogMessage(payload string)
}

// NetClient is the raw transport used by the HTTP sink. One outstanding
// connection, no pooling.
type NetClient interface {
	Connect(host string, port int) bool
	Stop()
	Connected() bool
	Print(data string)
	Available() int
	Read(buf []byte) int
}

// Config holds the per-sink enable flags and destination parameters.
// Serial is not routed here: raw bytes already reach the primary sink at
// ingestion time. The flags are kept because they are part of the
// persisted configuration and gate diagnostics.
type Config struct {
	MQTTEnabled bool
	MQTTTopic   string
	HTTPEnabled bool
	HTTPAddr    string
	HTTPPort    int
	HTTPURL     string
	CmdEnabled  bool
}

// Stats counts dispatch outcomes per sink.
type Stats struct {
	PublishSent uint64
	CommandSent uint64
	HTTPSent    uint64
	HTTPErrors  uint64
}

// Router fans one completed line out to every enabled sink. Sinks are
// independent: a failing or disabled sink never affects the others.
type Router struct {
	cfg        Config
	publish    PublishChannel
	command    CommandChannel
	client     NetClient
	systemName string
	diag       func(format string, args ...any)
	stats      Stats
}

func New(publish PublishChannel, command CommandChannel, client NetClient) *Router {
	return &Router{
		publish: publish,
		command: command,
		client:  client,
		diag:    func(string, ...any) {},
	}
}

func (r *Router) SetConfig(cfg Config) {
	r.cfg = cfg
}

func (r *Router) Config() Config {
	return r.cfg
}

func (r *Router) SetSystemName(name string) {
	r.systemName = name
}

// SetDiag installs the diagnostic printf used for sink failures. Output
// goes to the primary sink, so it is itself subject to pause buffering.
func (r *Router) SetDiag(diag func(format string, args ...any)) {
	if diag == nil {
		diag = func(string, ...any) {}
	}
	r.diag = diag
}

func (r *Router) Stats() Stats {
	return r.stats
}

// AnyStructured reports whether any line-oriented sink is enabled. When
// none is, line assembly can be skipped entirely.
func (r *Router) AnyStructured() bool {
	return r.cfg.MQTTEnabled || r.cfg.HTTPEnabled || r.cfg.CmdEnabled
}

// Dispatch formats and sends one line to each enabled sink.
func (r *Router) Dispatch(line model.LogLine) {
	if r.cfg.MQTTEnabled || r.cfg.CmdEnabled {
		payload := structuredPayload(line)
		if r.cfg.MQTTEnabled && r.publish != nil {
			r.publish.Publish(r.cfg.MQTTTopic, payload)
			r.stats.PublishSent++
		}
		if r.cfg.CmdEnabled && r.command != nil {
			r.command.LogMessage(payload)
			r.stats.CommandSent++
		}
	}
	if r.cfg.HTTPEnabled && r.client != nil {
		r.sendHTTP(line)
	}
}

// sendHTTP posts one line to the configured endpoint over a fresh,
// non-persistent connection. Any previous connection is dropped without
// checking its state. Connect failure drops the line for this sink only.
func (r *Router) sendHTTP(line model.LogLine) {
	r.client.Stop()
	if !r.client.Connect(r.cfg.HTTPAddr, r.cfg.HTTPPort) {
		r.stats.HTTPErrors++
		r.diag("couldn't connect to %s:%d", r.cfg.HTTPAddr, r.cfg.HTTPPort)
		return
	}
	body := httpBody(line)
	r.client.Print(httpRequest(r.cfg.HTTPURL, r.systemName, body))
	r.stats.HTTPSent++
}
