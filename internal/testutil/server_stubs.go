package testutil

import (
	"context"
	"net/http"
	"sync/atomic"
)

// StubHTTPServer implements the server's httpServer interface for tests.
// Counters are atomic because ListenAndServe runs on its own goroutine.
type StubHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ListenErr     error
	ShutdownErr   error
	listenCalls   atomic.Int32
	shutdownCalls atomic.Int32
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.listenCalls.Add(1)
	if s.ListenErr != nil {
		return s.ListenErr
	}
	return http.ErrServerClosed
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls.Add(1)
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

func (s *StubHTTPServer) ListenCalls() int   { return int(s.listenCalls.Load()) }
func (s *StubHTTPServer) ShutdownCalls() int { return int(s.shutdownCalls.Load()) }

// StubDatabase satisfies the server's database dependency.
type StubDatabase struct {
	PingErr    error
	closeCalls atomic.Int32
}

func (d *StubDatabase) Ping(ctx context.Context) error {
	_ = ctx
	return d.PingErr
}

func (d *StubDatabase) Close() {
	d.closeCalls.Add(1)
}

func (d *StubDatabase) CloseCalls() int { return int(d.closeCalls.Load()) }
