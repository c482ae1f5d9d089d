package bsm

import (
	"strconv"
	"strings"
)

// PassengerName represents the passenger name element (.P)
type PassengerName struct {
	Surname    string
	GivenNames []string
}

// Decode parses .P/<count><surname>[/<given name>]*
func (p *PassengerName) Decode(text string) {
	elements := strings.Split(stripElement(text, DotP), elementSeparator)

	// The given-name count sits in front of the surname as 1 or 2 digits.
	surname := elements[0]
	switch {
	case len(surname) >= 2 && isDigits(surname[:2]):
		surname = surname[2:]
	case len(surname) >= 1 && isDigits(surname[:1]):
		surname = surname[1:]
	}
	p.Surname = surname

	for _, name := range elements[1:] {
		if name != "" {
			p.GivenNames = append(p.GivenNames, name)
		}
	}
}

// Encode emits the given-name count, surname and given names in order
func (p *PassengerName) Encode() string {
	var sb strings.Builder
	sb.WriteString(DotP)
	sb.WriteString(elementSeparator)
	sb.WriteString(strconv.Itoa(len(p.GivenNames)))
	sb.WriteString(p.Surname)
	for _, name := range p.GivenNames {
		sb.WriteString(elementSeparator)
		sb.WriteString(name)
	}
	sb.WriteString(lineBreak)
	return sb.String()
}
