// Package bsm implements the Type-B baggage source message: the dot element codecs,
// the message aggregate, field validation, equality, stream framing and a synthetic
// message generator.
package bsm

import (
	"strings"
	"time"
)

// ChangeOfStatus tells the receiver what to do with the bags in the message
type ChangeOfStatus string

// Change of status values
const (
	Add    ChangeOfStatus = "ADD"
	Change ChangeOfStatus = "CHG"
	Delete ChangeOfStatus = "DEL"
)

// Message markers
const (
	StartOfMessage = "BSM"
	EndOfMessage   = "ENDBSM"
)

// Message represents a simplified baggage source message.
//
// A segment pointer is nil until it is decoded from input or set by a builder.
type Message struct {
	ChangeOfStatus ChangeOfStatus
	Flight         *FlightInfo
	Tags           *BaggageTags
	Passenger      *PassengerName
	Version        *VersionInfo
	ReceivedOn     time.Time
}

// segmentDecoders dispatches a dot element to its codec by the 2 character prefix
var segmentDecoders = map[string]func(m *Message, text string){
	DotF: func(m *Message, text string) {
		m.Flight = &FlightInfo{}
		m.Flight.Decode(text)
	},
	DotN: func(m *Message, text string) {
		m.Tags = &BaggageTags{}
		m.Tags.Decode(text)
	},
	DotP: func(m *Message, text string) {
		m.Passenger = &PassengerName{}
		m.Passenger.Decode(text)
	},
	DotV: func(m *Message, text string) {
		m.Version = &VersionInfo{}
		m.Version.Decode(text)
	},
}

// DecodeMessage decodes one complete message
func DecodeMessage(text string) *Message {
	m := &Message{}
	m.Decode(text)
	return m
}

// Decode populates the message from its Type-B text. Unknown and malformed elements are skipped.
func (m *Message) Decode(text string) {
	body := stripMarkers(text)
	m.ChangeOfStatus = parseChangeOfStatus(body)

	for consumed := 0; consumed < len(body); {
		start := strings.IndexByte(body[consumed:], '.')
		if start == -1 {
			break
		}
		start += consumed

		end := strings.IndexByte(body[start+1:], '.')
		if end == -1 {
			end = len(body)
		} else {
			end += start + 1
		}

		line := body[start:end]
		if len(line) >= 2 {
			if decode, ok := segmentDecoders[line[:2]]; ok {
				decode(m, line)
			}
		}

		consumed = end
	}
}

// Encode returns the message in canonical form. Elements are always emitted in F, N, P, V order.
func (m *Message) Encode() string {
	var sb strings.Builder
	sb.WriteString(StartOfMessage)
	sb.WriteString(lineBreak)
	sb.WriteString(string(m.ChangeOfStatus))
	sb.WriteString(lineBreak)

	if m.Flight != nil {
		sb.WriteString(m.Flight.Encode())
	}
	if m.Tags != nil {
		sb.WriteString(m.Tags.Encode())
	}
	if m.Passenger != nil {
		sb.WriteString(m.Passenger.Encode())
	}
	if m.Version != nil {
		sb.WriteString(m.Version.Encode())
	}

	sb.WriteString(EndOfMessage)
	sb.WriteString(lineBreak)
	return sb.String()
}

// stripMarkers drops the leading start marker and the trailing end marker
func stripMarkers(text string) string {
	text = strings.TrimLeft(text, "\r\n")
	text = strings.TrimPrefix(text, StartOfMessage)
	text = strings.TrimLeft(text, "\r\n")

	trimmed := strings.TrimRight(text, "\r\n")
	if body, ok := strings.CutSuffix(trimmed, EndOfMessage); ok {
		return body
	}
	return text
}

// parseChangeOfStatus reads the status from the first 3 characters of the body
func parseChangeOfStatus(body string) ChangeOfStatus {
	if len(body) < 3 {
		return Add
	}
	switch ChangeOfStatus(body[:3]) {
	case Change:
		return Change
	case Delete:
		return Delete
	default:
		return Add
	}
}
