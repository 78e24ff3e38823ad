package engine

import (
	"logmux/internal/model"
	"logmux/internal/mux"
	"logmux/internal/router"
)

type CommandType int

const (
	CommandSetLogLevel CommandType = iota
	CommandSetMQTT
	CommandSetSerial
	CommandSetCmdSerial
	CommandSetHTTP
	CommandPause
	CommandResume
)

type Command struct {
	Type    CommandType
	Enabled bool
	Value   string
	Addr    string
	Port    string
	URL     string
	RespCh  chan CommandResult
}

type CommandResult struct {
	Err error
}

type SnapshotRequest struct{}

type Snapshot struct {
	SystemName    string
	Stats         mux.Stats
	Paused        bool
	PauseBuffered int
	Threshold     model.Severity
	Router        router.Config
	SerialOn      bool
	SerialPort    int
	Lines         []string
	LineSevs      []model.Severity
	ActiveConns   int
	IngestDropped uint64
	LinesPerSec   []uint64
}
