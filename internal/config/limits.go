package config

import "time"

type Limits struct {
	DefaultBindHost   string
	DefaultPort       int
	LineMaxLen        int
	PauseBufferBytes  int
	PauseTimeout      time.Duration
	RxDrainMaxBytes   int
	ServiceTick       time.Duration
	RecentLines       int
	MaxConnsGlobal    int
	IngestChunkBytes  int
	IngestQueueSize   int
	DefaultHTTPPort   int
	DefaultSerialOn   bool
	DefaultSerialPort int
}

func DefaultLimits() Limits {
	return Limits{
		DefaultBindHost:   "127.0.0.1",
		DefaultPort:       9800,
		LineMaxLen:        250,
		PauseBufferBytes:  1000,
		PauseTimeout:      15 * time.Second,
		RxDrainMaxBytes:   100,
		ServiceTick:       50 * time.Millisecond,
		RecentLines:       2000,
		MaxConnsGlobal:    64,
		IngestChunkBytes:  1024,
		IngestQueueSize:   4096,
		DefaultHTTPPort:   5076,
		DefaultSerialOn:   true,
		DefaultSerialPort: 0,
	}
}
