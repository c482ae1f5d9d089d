package bsm

import "strings"

// FlightInfo represents the outbound flight element (.F)
type FlightInfo struct {
	Airline       string // 2 alphanumeric characters
	FlightNumber  string // 4 digits, optionally followed by a capital letter
	FlightDate    string // DDMON, e.g. 01JAN
	Destination   string // 3 letter airport code or empty
	ClassOfTravel string // 1 capital letter or empty
}

// minFlightIDLen is the shortest airline+flight number token that can be split
const minFlightIDLen = 6

// Decode parses .F/<airline><flight>/<date>[/<destination>[/<class>]]
func (f *FlightInfo) Decode(text string) {
	elements := strings.Split(stripElement(text, DotF), elementSeparator)

	if id := elements[0]; len(id) >= minFlightIDLen {
		f.Airline = id[:2]
		f.FlightNumber = id[2:]
	}

	if len(elements) > 1 && elements[1] != "" {
		f.FlightDate = elements[1]
	}

	if len(elements) > 2 && elements[2] != "" {
		f.Destination = elements[2]
	}

	if len(elements) > 3 && elements[3] != "" {
		f.ClassOfTravel = elements[3]
	}
}

// Encode emits the flight element up to its last non-empty field
func (f *FlightInfo) Encode() string {
	fields := []string{f.Airline + f.FlightNumber, f.FlightDate, f.Destination, f.ClassOfTravel}

	last := 0
	for i := len(fields) - 1; i > 0; i-- {
		if fields[i] != "" {
			last = i
			break
		}
	}

	return DotF + elementSeparator + strings.Join(fields[:last+1], elementSeparator) + lineBreak
}
