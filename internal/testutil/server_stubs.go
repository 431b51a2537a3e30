package testutil

import (
	"context"
	"net/http"
	"sync"
)

// StubHTTPServer implements the server's httpServer for tests. Serve blocks
// until Shutdown is called.
type StubHTTPServer struct {
	AddrVal    string
	HandlerVal http.Handler
	ListenErr  error
	ServeErr   error

	mu            sync.Mutex
	ListenCalls   int
	ServeCalls    int
	ShutdownCalls int
	ShutdownErr   error
	done          chan struct{}
}

func (s *StubHTTPServer) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListenCalls++
	if s.done == nil {
		s.done = make(chan struct{})
	}
	return s.ListenErr
}

func (s *StubHTTPServer) Serve() error {
	s.mu.Lock()
	s.ServeCalls++
	done := s.done
	err := s.ServeErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if done != nil {
		<-done
	}
	return http.ErrServerClosed
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ShutdownCalls++
	if s.done != nil {
		select {
		case <-s.done:
		default:
			close(s.done)
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// Counts returns the call counters under lock.
func (s *StubHTTPServer) Counts() (listen, serve, shutdown int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ListenCalls, s.ServeCalls, s.ShutdownCalls
}
