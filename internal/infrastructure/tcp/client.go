package tcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"
)

// ClientOptions configures a Client
type ClientOptions struct {
	// PollTimeout bounds how long one receive waits for new bytes
	PollTimeout time.Duration
	// MaxBufferBytes caps the unparsed remainder carried between receives
	MaxBufferBytes int
	// OnConsumed is called with the number of bytes the parser consumed, when non-zero
	OnConsumed func(n int)
}

// Client receives a Type-B stream and frames it with a Parser.
// A Client is safe for concurrent use; receives are serialized.
type Client[F any] struct {
	parser Parser[F]
	opts   ClientOptions
	dialer net.Dialer

	mu      sync.Mutex
	conn    net.Conn
	pending []byte
	chunk   []byte
}

// NewClient creates a client that frames inbound bytes with parser
func NewClient[F any](parser Parser[F], opts ClientOptions) *Client[F] {
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = defaultPollTimeout
	}
	if opts.MaxBufferBytes <= 0 {
		opts.MaxBufferBytes = defaultMaxBufferBytes
	}
	return &Client[F]{
		parser: parser,
		opts:   opts,
		chunk:  make([]byte, readChunkSize),
	}
}

// Connect dials addr. Connecting an already connected client is a no-op.
func (c *Client[F]) Connect(ctx context.Context, addr string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	conn, err := c.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	c.conn = conn
	c.pending = c.pending[:0]
	return nil
}

// IsConnected reports whether the client holds an open connection
func (c *Client[F]) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Disconnect closes the connection and drops any unparsed bytes
func (c *Client[F]) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Client[F]) closeLocked() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.pending = c.pending[:0]
	return err
}

// ReceiveAndParse reads whatever arrives within the poll timeout and returns the complete frames.
// Bytes of a partial frame are kept for the next call. When the remote closes the connection,
// the frames already buffered are returned together with ErrNotConnected.
func (c *Client[F]) ReceiveAndParse(ctx context.Context) ([]F, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, ErrNotConnected
	}

	deadline := time.Now().Add(c.opts.PollTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = c.conn.SetReadDeadline(deadline)

	n, readErr := c.conn.Read(c.chunk)
	if n > 0 {
		c.pending = append(c.pending, c.chunk[:n]...)
	}

	frames, consumed := c.parser.Parse(c.pending)
	if consumed > 0 {
		c.pending = append(c.pending[:0], c.pending[consumed:]...)
		if c.opts.OnConsumed != nil {
			c.opts.OnConsumed(consumed)
		}
	}

	if len(c.pending) > c.opts.MaxBufferBytes {
		c.pending = c.pending[:0]
		return frames, ErrBufferOverflow
	}

	if readErr != nil && !errors.Is(readErr, os.ErrDeadlineExceeded) {
		_ = c.closeLocked()
		if errors.Is(readErr, io.EOF) {
			return frames, ErrNotConnected
		}
		return frames, fmt.Errorf("%w: %v", ErrNotConnected, readErr)
	}

	return frames, nil
}

// Pending returns the number of unparsed bytes carried to the next receive
func (c *Client[F]) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
