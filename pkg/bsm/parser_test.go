package bsm

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestMessages() []*Message {
	first := newTestMessage()

	second := newTestMessage()
	second.ChangeOfStatus = Change
	second.Flight.Airline = "DL"
	second.Tags.TagNumbers = []string{"0006000001", "0006000002"}

	third := newTestMessage()
	third.ChangeOfStatus = Delete
	third.Flight = nil
	third.Passenger.GivenNames = []string{"JOHN", "PAUL"}

	return []*Message{first, second, third}
}

func TestParserSingleMessage(t *testing.T) {
	m := newTestMessage()
	buf := []byte(m.Encode())

	frames, consumed := NewParser().Parse(buf)

	require.Len(t, frames, 1)
	require.Equal(t, len(buf), consumed)
	require.True(t, frames[0].IsValid())
	require.True(t, MessagesEqual(m, frames[0].Message))
	require.Equal(t, buf, frames[0].Bytes())
}

func TestParserMultipleMessages(t *testing.T) {
	messages := newTestMessages()

	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(m.Encode())
	}
	buf := []byte(sb.String())

	frames, consumed := NewParser().Parse(buf)

	require.Len(t, frames, len(messages))
	require.Equal(t, len(buf), consumed)
	for i, m := range messages {
		require.True(t, frames[i].IsValid(), "message %d is not valid: %v", i, frames[i].Validate())
		require.True(t, MessagesEqual(m, frames[i].Message), "message %d differs", i)
	}
}

func TestParserPartialTrailingMessage(t *testing.T) {
	complete := newTestMessage().Encode()
	partial := strings.TrimSuffix(newTestMessages()[1].Encode(), "ENDBSM\n")

	frames, consumed := NewParser().Parse([]byte(complete + partial))

	require.Len(t, frames, 1)
	require.Equal(t, len(complete), consumed)
}

func TestParserResumesWithRemainder(t *testing.T) {
	messages := newTestMessages()
	stream := []byte(messages[0].Encode() + messages[1].Encode())
	split := len(messages[0].Encode()) + 10

	p := NewParser()
	buf := append([]byte(nil), stream[:split]...)

	frames, consumed := p.Parse(buf)
	require.Len(t, frames, 1)
	buf = buf[consumed:]

	buf = append(buf, stream[split:]...)
	frames, consumed = p.Parse(buf)
	require.Len(t, frames, 1)
	require.Equal(t, len(buf), consumed)
	require.True(t, MessagesEqual(messages[1], frames[0].Message))
}

func TestParserLineTerminators(t *testing.T) {
	crlf := strings.ReplaceAll(newTestMessage().Encode(), "\n", "\r\n")
	noNewline := strings.TrimSuffix(newTestMessage().Encode(), "\n")

	tests := []struct {
		name string
		buf  string
	}{
		{"crlf", crlf},
		{"no trailing newline", noNewline},
		{"crlf then message", crlf + newTestMessage().Encode()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			frames, consumed := NewParser().Parse([]byte(test.buf))
			require.NotEmpty(t, frames)
			require.Equal(t, len(test.buf), consumed)
			for _, frame := range frames {
				require.True(t, MessagesEqual(newTestMessage(), frame.Message))
			}
		})
	}
}

func TestParserNoCompleteMessage(t *testing.T) {
	tests := []struct {
		name string
		buf  string
	}{
		{"empty", ""},
		{"no start marker", "garbage\n"},
		{"no end marker", "BSM\nADD\n.F/AA1234/16OCT\n"},
		{"end marker only", "ENDBSM\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			frames, consumed := NewParser().Parse([]byte(test.buf))
			require.Empty(t, frames)
			require.Zero(t, consumed)
		})
	}
}

func TestParserSkipsLeadingGarbage(t *testing.T) {
	m := newTestMessages()[2]
	buf := "ENDBSM\nnoise\n" + m.Encode()

	frames, consumed := NewParser().Parse([]byte(buf))

	require.Len(t, frames, 1)
	require.Equal(t, len(buf), consumed)
	require.Equal(t, Delete, frames[0].Message.ChangeOfStatus)
	require.True(t, MessagesEqual(m, frames[0].Message))
}

func TestParserStampsReceivedOn(t *testing.T) {
	at := time.Date(2024, time.October, 16, 12, 0, 0, 0, time.UTC)
	p := &Parser{now: func() time.Time { return at }}

	frames, _ := p.Parse([]byte(newTestMessage().Encode()))
	require.Len(t, frames, 1)
	require.Equal(t, at, frames[0].Message.ReceivedOn)
}
