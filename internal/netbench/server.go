package netbench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
)

// Server drains one client connection at a time.
type Server struct {
	cfg ServerConfig
	ln  net.Listener
}

// Listen binds the configured address. Port 0 picks a free port.
func Listen(cfg ServerConfig) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ln, err := net.Listen("tcp", cfg.HostPort())
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", cfg.HostPort(), err)
	}
	return &Server{cfg: cfg, ln: ln}, nil
}

func (s *Server) Addr() net.Addr { return s.ln.Addr() }

// Serve accepts connections until ctx is cancelled or the listener is
// closed. Sessions are handled inline, so a second client waits in the
// accept queue until the current one finishes. Cancelling ctx also ends the
// session in progress.
func (s *Server) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { s.ln.Close() })
	defer stop()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		sess := s.drain(ctx, conn)
		if s.cfg.OnSession != nil {
			s.cfg.OnSession(sess)
		}
	}
}

func (s *Server) Close() error {
	return s.ln.Close()
}

// drain discards everything the client sends until it shuts down its write
// side, then closes the connection.
func (s *Server) drain(ctx context.Context, conn net.Conn) Session {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.SetReadDeadline(time.Now()) })
	defer stop()

	sess := Session{
		ID:     uuid.NewString(),
		Remote: conn.RemoteAddr(),
	}
	start := time.Now()
	buf := make([]byte, ServerBufferSize)
	for {
		n, err := conn.Read(buf)
		sess.Bytes += int64(n)
		if err != nil {
			switch {
			case ctx.Err() != nil:
				sess.Err = ctx.Err()
			case !errors.Is(err, io.EOF):
				sess.Err = err
			}
			break
		}
	}
	sess.Elapsed = time.Since(start)
	return sess
}
