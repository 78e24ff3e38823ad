package server

import (
	"context"
	"net"
	"sync"
	"sync/atomic"

	"logmux/internal/config"
)

// Server accepts TCP connections carrying raw log byte streams and forwards
// them to the engine in chunks. Order within a connection is preserved;
// interleaving across connections is the caller's concern, so a single
// producer per deployment is the expected shape.
type Server struct {
	limits config.Limits
	byteCh chan<- []byte

	mu       sync.Mutex
	listener net.Listener
	cancel   context.CancelFunc

	activeConns int64
	rejected    uint64
	dropped     uint64
}

type Stats struct {
	ActiveConns int
	Rejected    uint64
	Dropped     uint64
}

func New(limits config.Limits, byteCh chan<- []byte) *Server {
	return &Server{limits: limits, byteCh: byteCh}
}

// Start binds the listener and begins accepting. It returns the bound
// address, useful when port 0 was requested.
func (s *Server) Start(ctx context.Context, addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}
	serverCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.listener = ln
	s.cancel = cancel
	s.mu.Unlock()

	go s.acceptLoop(serverCtx, ln)
	return ln.Addr().String(), nil
}

func (s *Server) Stop() error {
	s.mu.Lock()
	ln := s.listener
	cancel := s.cancel
	s.listener = nil
	s.cancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if ln == nil {
		return nil
	}
	return ln.Close()
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				continue
			}
		}
		if atomic.LoadInt64(&s.activeConns) >= int64(s.limits.MaxConnsGlobal) {
			atomic.AddUint64(&s.rejected, 1)
			_ = conn.Close()
			continue
		}
		atomic.AddInt64(&s.activeConns, 1)
		go s.readLoop(ctx, conn)
	}
}

func (s *Server) readLoop(ctx context.Context, conn net.Conn) {
	defer func() {
		_ = conn.Close()
		atomic.AddInt64(&s.activeConns, -1)
	}()

	buf := make([]byte, s.limits.IngestChunkBytes)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		n, err := conn.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case s.byteCh <- chunk:
			default:
				atomic.AddUint64(&s.dropped, uint64(n))
			}
		}
		if err != nil {
			return
		}
	}
}

func (s *Server) Stats() Stats {
	return Stats{
		ActiveConns: int(atomic.LoadInt64(&s.activeConns)),
		Rejected:    atomic.LoadUint64(&s.rejected),
		Dropped:     atomic.LoadUint64(&s.dropped),
	}
}
