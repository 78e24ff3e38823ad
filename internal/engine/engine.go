package engine

import (
	"context"
	"errors"
	"time"

	"logmux/internal/config"
	"logmux/internal/model"
	"logmux/internal/mux"
	"logmux/internal/store"
)

// Engine owns the Multiplexer and serializes all access to it: byte chunks
// from the ingest server, configuration commands, snapshot requests and the
// periodic service tick all run on the one Run goroutine, which keeps the
// multiplexer core lock-free.
type Engine struct {
	limits config.Limits
	mx     *mux.Multiplexer

	byteCh     chan []byte
	cmdCh      chan Command
	snapReqCh  chan SnapshotRequest
	snapRespCh chan Snapshot

	recent       *store.LineRing
	linesPerSec  *store.RateWindow
	pendingLines uint64

	serverStatsFn func() (activeConns int, dropped uint64)
}

func New(limits config.Limits, mx *mux.Multiplexer) *Engine {
	e := &Engine{
		limits:      limits,
		mx:          mx,
		byteCh:      make(chan []byte, limits.IngestQueueSize),
		cmdCh:       make(chan Command, 64),
		snapReqCh:   make(chan SnapshotRequest, 16),
		snapRespCh:  make(chan Snapshot, 16),
		recent:      store.NewLineRing(limits.RecentLines),
		linesPerSec: store.NewRateWindow(60, time.Now()),
	}
	mx.SetOnLine(func(line model.LogLine) {
		e.recent.Append(line.Text, uint8(line.Severity))
		e.pendingLines++
	})
	return e
}

// ByteCh is the ingest channel for raw byte chunks. Senders must not block:
// use a non-blocking send and count the drop.
func (e *Engine) ByteCh() chan<- []byte {
	return e.byteCh
}

func (e *Engine) CmdCh() chan<- Command {
	return e.cmdCh
}

func (e *Engine) SnapshotReqCh() chan<- SnapshotRequest {
	return e.snapReqCh
}

func (e *Engine) SnapshotRespCh() <-chan Snapshot {
	return e.snapRespCh
}

func (e *Engine) SetServerStatsFn(fn func() (activeConns int, dropped uint64)) {
	e.serverStatsFn = fn
}

func (e *Engine) Run(ctx context.Context) error {
	tick := time.NewTicker(e.limits.ServiceTick)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chunk := <-e.byteCh:
			e.consumeChunk(chunk)
			e.drainIngestBurst()
		case cmd := <-e.cmdCh:
			err := e.handleCommand(cmd)
			if cmd.RespCh != nil {
				cmd.RespCh <- CommandResult{Err: err}
			}
		case <-e.snapReqCh:
			e.snapRespCh <- e.buildSnapshot()
		case <-tick.C:
			e.mx.Service(0)
			e.flushPendingLines(time.Now())
		}
	}
}

func (e *Engine) consumeChunk(chunk []byte) {
	for _, b := range chunk {
		e.mx.Write(b)
	}
}

func (e *Engine) drainIngestBurst() {
	for i := 0; i < 32; i++ {
		select {
		case chunk := <-e.byteCh:
			e.consumeChunk(chunk)
		default:
			return
		}
	}
}

func (e *Engine) flushPendingLines(now time.Time) {
	if e.pendingLines == 0 {
		return
	}
	e.linesPerSec.Add(e.pendingLines, now)
	e.pendingLines = 0
}

func (e *Engine) handleCommand(cmd Command) error {
	switch cmd.Type {
	case CommandSetLogLevel:
		e.mx.SetLogLevel(cmd.Value)
	case CommandSetMQTT:
		e.mx.SetMQTT(cmd.Enabled, cmd.Value)
	case CommandSetSerial:
		e.mx.SetSerial(cmd.Enabled, cmd.Value)
	case CommandSetCmdSerial:
		e.mx.SetCmdSerial(cmd.Enabled)
	case CommandSetHTTP:
		e.mx.SetHTTP(cmd.Enabled, cmd.Addr, cmd.Port, cmd.URL)
	case CommandPause:
		e.mx.Pause()
	case CommandResume:
		e.mx.Resume()
	default:
		return errors.New("unknown command")
	}
	return nil
}
