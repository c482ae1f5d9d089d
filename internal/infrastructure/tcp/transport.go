// Package tcp carries Type-B messages over plain TCP. The server broadcasts encoded frames
// to every connected client; the client frames its inbound stream with a Parser.
package tcp

import (
	"errors"
	"time"
)

var (
	// ErrNotConnected is returned by client operations that need an open connection
	ErrNotConnected = errors.New("tcp: not connected")

	// ErrBufferOverflow is returned when the pending receive buffer grows past its limit
	// without yielding a complete frame. The buffer is dropped.
	ErrBufferOverflow = errors.New("tcp: receive buffer overflow")
)

// Frame is an outbound unit the server can put on the wire
type Frame interface {
	Bytes() []byte
}

// Parser frames inbound bytes. It returns every complete frame in buf and the number
// of bytes consumed; the unconsumed remainder is kept for the next call.
type Parser[F any] interface {
	Parse(buf []byte) ([]F, int)
}

const (
	defaultWriteTimeout   = 5 * time.Second
	defaultPollTimeout    = 100 * time.Millisecond
	defaultMaxBufferBytes = 1 << 20
	readChunkSize         = 32 * 1024
)
