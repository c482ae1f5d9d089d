package tcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"bsm-service/pkg/logger"
)

// ServerOptions configures a Server
type ServerOptions struct {
	// StaleTimeout marks a connection stale when nothing was read from or written to it for this long.
	// Zero disables idle detection; write failures and remote closes still mark connections stale.
	StaleTimeout time.Duration
	WriteTimeout time.Duration
}

type connection struct {
	id           string
	conn         net.Conn
	connectedAt  time.Time
	lastActivity time.Time
	stale        bool
}

// Server accepts Type-B clients and broadcasts frames to all of them
type Server struct {
	opts   ServerOptions
	logger logger.Logger

	mu       sync.Mutex
	listener net.Listener
	conns    map[string]*connection
	wg       sync.WaitGroup
	now      func() time.Time
}

// NewServer creates a new server
func NewServer(logger logger.Logger, opts ServerOptions) *Server {
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	return &Server{
		opts:   opts,
		logger: logger,
		conns:  make(map[string]*connection),
		now:    time.Now,
	}
}

// Listen binds the server to addr
func (s *Server) Listen(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.logger.Info("Type-B server listening", "addr", listener.Addr().String())
	return nil
}

// Addr returns the bound address, or nil before Listen
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts connections until ctx is done or the server is closed
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()
	if listener == nil {
		return errors.New("tcp: server is not listening")
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			listener.Close()
		case <-stop:
		}
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}
		s.register(conn)
	}
}

func (s *Server) register(conn net.Conn) {
	now := s.now()
	c := &connection{
		id:           uuid.NewString(),
		conn:         conn,
		connectedAt:  now,
		lastActivity: now,
	}

	s.mu.Lock()
	s.conns[c.id] = c
	s.mu.Unlock()

	s.logger.Info("Client connected", "connection", c.id, "remote", conn.RemoteAddr().String())

	s.wg.Add(1)
	go s.watch(c)
}

// watch drains the inbound side of a connection so a remote close is noticed
func (s *Server) watch(c *connection) {
	defer s.wg.Done()

	buf := make([]byte, 512)
	for {
		n, err := c.conn.Read(buf)
		if n > 0 {
			s.touch(c.id)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				s.logger.Debug("Client read failed", "connection", c.id, "error", err)
			}
			s.markStale(c.id)
			return
		}
	}
}

func (s *Server) touch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.conns[id]; ok {
		c.lastActivity = s.now()
	}
}

func (s *Server) markStale(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.conns[id]; ok {
		c.stale = true
	}
}

// ConnectionCount returns the number of registered connections, stale ones included
func (s *Server) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// SendToAll writes the frame to every live connection and returns how many writes succeeded.
// A failed write marks the connection stale.
func (s *Server) SendToAll(ctx context.Context, frame Frame) int {
	data := frame.Bytes()

	s.mu.Lock()
	targets := make([]*connection, 0, len(s.conns))
	for _, c := range s.conns {
		if !c.stale {
			targets = append(targets, c)
		}
	}
	s.mu.Unlock()

	sent := 0
	for _, c := range targets {
		if ctx.Err() != nil {
			break
		}

		deadline := s.now().Add(s.opts.WriteTimeout)
		if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
			deadline = d
		}
		_ = c.conn.SetWriteDeadline(deadline)

		if _, err := c.conn.Write(data); err != nil {
			s.logger.Warn("Failed to send to client", "connection", c.id, "error", err)
			s.markStale(c.id)
			continue
		}
		s.touch(c.id)
		sent++
	}

	return sent
}

// StaleConnections returns the ids of connections that failed, closed or sat idle past the stale timeout
func (s *Server) StaleConnections() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var ids []string
	for id, c := range s.conns {
		idle := s.opts.StaleTimeout > 0 && now.Sub(c.lastActivity) > s.opts.StaleTimeout
		if c.stale || idle {
			ids = append(ids, id)
		}
	}
	return ids
}

// Disconnect closes and forgets the given connections. Unknown ids are ignored.
func (s *Server) Disconnect(ids ...string) int {
	s.mu.Lock()
	var closing []*connection
	for _, id := range ids {
		if c, ok := s.conns[id]; ok {
			closing = append(closing, c)
			delete(s.conns, id)
		}
	}
	s.mu.Unlock()

	for _, c := range closing {
		c.conn.Close()
		s.logger.Info("Client disconnected", "connection", c.id, "connectedFor", s.now().Sub(c.connectedAt).String())
	}
	return len(closing)
}

// Close stops accepting, closes every connection and waits for the connection watchers
func (s *Server) Close() error {
	s.mu.Lock()
	listener := s.listener
	ids := make([]string, 0, len(s.conns))
	for id := range s.conns {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	var err error
	if listener != nil {
		if cerr := listener.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			err = cerr
		}
	}
	s.Disconnect(ids...)
	s.wg.Wait()
	return err
}
