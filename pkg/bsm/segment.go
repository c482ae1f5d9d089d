package bsm

import "strings"

// Segment is a dot element of a BSM (.F, .N, .P or .V)
type Segment interface {
	// Decode populates the segment from its Type-B text. Malformed text leaves fields at their zero value.
	Decode(text string)

	// Encode returns the segment in its canonical Type-B form, including the trailing newline
	Encode() string
}

// Dot element identifiers
const (
	DotF = ".F"
	DotN = ".N"
	DotP = ".P"
	DotV = ".V"
)

const (
	elementSeparator = "/"
	lineBreak        = "\n"
)

// stripElement removes the identifier and line terminators from a segment's text
func stripElement(text, identifier string) string {
	text = strings.TrimPrefix(text, identifier)
	text = strings.TrimPrefix(text, elementSeparator)
	return strings.NewReplacer("\r", "", "\n", "").Replace(text)
}

// isDigits reports whether s is non-empty and made only of ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

var (
	_ Segment = (*FlightInfo)(nil)
	_ Segment = (*BaggageTags)(nil)
	_ Segment = (*PassengerName)(nil)
	_ Segment = (*VersionInfo)(nil)
)
