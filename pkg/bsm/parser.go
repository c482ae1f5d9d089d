package bsm

import (
	"bytes"
	"time"
)

var (
	startMarker = []byte(StartOfMessage)
	endMarker   = []byte(EndOfMessage)
	endPrefix   = []byte("END")
)

// Frame wraps a decoded message for the transport
type Frame struct {
	Message *Message
}

// NewFrame wraps a message
func NewFrame(m *Message) *Frame {
	return &Frame{Message: m}
}

// Bytes returns the canonical ASCII encoding of the message
func (f *Frame) Bytes() []byte {
	if f.Message == nil {
		return nil
	}
	return []byte(f.Message.Encode())
}

// Validate returns the validation issues of the message
func (f *Frame) Validate() []Issue {
	return Validate(f.Message)
}

// IsValid reports whether the message has no validation issues
func (f *Frame) IsValid() bool {
	return len(f.Validate()) == 0
}

// Parser frames BSMs out of an inbound byte stream.
//
// Parser holds no state between calls; the caller owns the receive buffer and must drop
// the consumed prefix after each call. Two goroutines must not drain the same buffer.
type Parser struct {
	now func() time.Time
}

// NewParser creates a parser that stamps messages with the current time
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// Parse decodes every complete message in buf and returns them with the number of bytes consumed.
// An incomplete trailing message is left unconsumed for the next call.
func (p *Parser) Parse(buf []byte) ([]*Frame, int) {
	var frames []*Frame
	consumed := 0

	for consumed < len(buf) {
		start := findStart(buf, consumed)
		if start == -1 {
			break
		}

		end := bytes.Index(buf[start:], endMarker)
		if end <= 0 {
			break
		}
		end += start + len(endMarker)

		// Include the line terminator when it is already in the buffer.
		if end < len(buf) && buf[end] == '\n' {
			end++
		} else if end+1 < len(buf) && buf[end] == '\r' && buf[end+1] == '\n' {
			end += 2
		}

		m := DecodeMessage(string(buf[start:end]))
		if p != nil && p.now != nil {
			m.ReceivedOn = p.now()
		}
		frames = append(frames, NewFrame(m))

		consumed = end
	}

	return frames, consumed
}

// findStart returns the index of the next start marker at or after from, ignoring the tail of an end marker
func findStart(buf []byte, from int) int {
	for from < len(buf) {
		i := bytes.Index(buf[from:], startMarker)
		if i == -1 {
			return -1
		}
		i += from
		if i >= len(endPrefix) && bytes.Equal(buf[i-len(endPrefix):i], endPrefix) {
			from = i + len(startMarker)
			continue
		}
		return i
	}
	return -1
}
