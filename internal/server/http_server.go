package server

import (
	"context"
	"net"
	"net/http"
)

// httpServer abstracts the HTTP server implementation for easier testing.
// Listen and Serve are split so the host can signal load only once the
// listener accepts connections.
type httpServer interface {
	Listen() error
	Serve() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type netHTTPServer struct {
	srv      *http.Server
	listener net.Listener
}

func (s *netHTTPServer) Listen() error {
	if s.listener != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

func (s *netHTTPServer) Serve() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.srv.Serve(s.listener)
}

func (s *netHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s *netHTTPServer) Handler() http.Handler              { return s.srv.Handler }

func (s *netHTTPServer) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.srv.Addr
}
