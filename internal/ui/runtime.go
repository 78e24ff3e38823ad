package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"logmux/internal/config"
	"logmux/internal/engine"
	"logmux/internal/mux"
	"logmux/internal/router"
	"logmux/internal/server"
	"logmux/internal/sink"
)

// Runtime wires store, sinks, multiplexer, engine and ingest server. The
// same wiring backs the TUI monitor and headless mode.
type Runtime struct {
	Engine *engine.Engine
	Server *server.Server
	Mux    *mux.Multiplexer

	limits   config.Limits
	listen   string
	closeFns []func()
}

func NewRuntime(fileCfg config.File, limits config.Limits, out io.ByteWriter, verbose bool) (*Runtime, error) {
	rt := &Runtime{limits: limits}

	var persist config.Store
	if fileCfg.StatePath != "" {
		fileStore, err := config.NewFileStore(fileCfg.StatePath)
		if err != nil {
			return nil, fmt.Errorf("open state file: %w", err)
		}
		persist = fileStore
	} else {
		persist = config.NewMemStore("")
	}

	var publish router.PublishChannel
	if fileCfg.MQTT.Broker != "" {
		clientID := fileCfg.MQTT.ClientID
		if clientID == "" {
			clientID = "logmux"
		}
		publisher, err := sink.NewMQTTPublisher(fileCfg.MQTT.Broker, clientID)
		if err != nil {
			return nil, fmt.Errorf("connect mqtt broker: %w", err)
		}
		publish = publisher
		rt.closeFns = append(rt.closeFns, publisher.Close)
	}

	command, err := sink.OpenLocalCommand(fileCfg.CmdDevice)
	if err != nil {
		return nil, fmt.Errorf("open command device: %w", err)
	}

	client := sink.NewTCPClient(2 * time.Second)
	rt.closeFns = append(rt.closeFns, client.Stop)

	rt.Mux = mux.New(out, publish, command, client, limits)
	rt.Mux.SetDiagnostics(verbose)

	systemName := fileCfg.SystemName
	if systemName == "" {
		systemName, _ = os.Hostname()
	}
	rt.Mux.Setup(persist, systemName)

	rt.Engine = engine.New(limits, rt.Mux)
	rt.Server = server.New(limits, rt.Engine.ByteCh())
	rt.Engine.SetServerStatsFn(func() (int, uint64) {
		stats := rt.Server.Stats()
		return stats.ActiveConns, stats.Dropped
	})

	rt.listen = fileCfg.Listen
	if rt.listen == "" {
		rt.listen = fmt.Sprintf("%s:%d", limits.DefaultBindHost, limits.DefaultPort)
	}
	return rt, nil
}

// Start launches the engine loop and the ingest server and returns the
// bound listen address.
func (r *Runtime) Start(ctx context.Context) (string, error) {
	go func() {
		_ = r.Engine.Run(ctx)
	}()
	return r.Server.Start(ctx, r.listen)
}

func (r *Runtime) Close() {
	_ = r.Server.Stop()
	for _, fn := range r.closeFns {
		fn()
	}
}

type discardSink struct{}

func (discardSink) WriteByte(byte) error { return nil }

// Run starts the runtime and the terminal monitor. In monitor mode the
// primary sink discards bytes (counters still advance); the dispatched
// lines are shown from engine snapshots instead.
func Run(noColor bool, fileCfg config.File, limits config.Limits, verbose bool) error {
	rt, err := NewRuntime(fileCfg, limits, discardSink{}, verbose)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, err := rt.Start(ctx); err != nil {
		return err
	}

	if !noColor {
		prevBg := termenv.BackgroundColor()
		termenv.SetBackgroundColor(termenv.RGBColor("#0B1220"))
		defer termenv.SetBackgroundColor(prevBg)
	}

	p := tea.NewProgram(NewModel(noColor, rt.Engine, cancel), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
