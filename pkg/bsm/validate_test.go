package bsm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateValidMessage(t *testing.T) {
	require.Empty(t, Validate(newTestMessage()))
	require.Empty(t, Validate(&Message{ChangeOfStatus: Add}))
	require.Empty(t, Validate(nil))
}

func TestValidateSingleField(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Message)
		segment string
		field   string
	}{
		{"lowercase airline", func(m *Message) { m.Flight.Airline = strings.ToLower(testAirline) }, DotF, "Airline"},
		{"lowercase class of travel", func(m *Message) { m.Flight.ClassOfTravel = "a" }, DotF, "ClassOfTravel"},
		{"lowercase destination", func(m *Message) { m.Flight.Destination = "msy" }, DotF, "Destination"},
		{"month before day", func(m *Message) { m.Flight.FlightDate = "JAN01" }, DotF, "FlightDate"},
		{"letters in flight number", func(m *Message) { m.Flight.FlightNumber = "ABCD" }, DotF, "FlightNumber"},
		{"no tags", func(m *Message) { m.Tags.TagNumbers = nil }, DotN, "TagNumbers"},
		{"too many tags", func(m *Message) {
			m.Tags.TagNumbers = make([]string, MaxTagCount+1)
		}, DotN, "TagNumbers"},
		{"no surname", func(m *Message) { m.Passenger.Surname = "" }, DotP, "Surname"},
		{"lowercase airport", func(m *Message) { m.Version.AirportCode = "mco" }, DotV, "AirportCode"},
		{"unknown source indicator", func(m *Message) { m.Version.SourceIndicator = "A" }, DotV, "SourceIndicator"},
		{"version zero", func(m *Message) { m.Version.Version = 0 }, DotV, "Version"},
		{"version ten", func(m *Message) { m.Version.Version = 10 }, DotV, "Version"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newTestMessage()
			test.mutate(m)

			issues := Validate(m)
			require.Len(t, issues, 1)
			require.Equal(t, test.segment, issues[0].Segment)
			require.Equal(t, test.field, issues[0].Field)
			require.NotEmpty(t, issues[0].Message)
		})
	}
}

func TestValidateAfterParse(t *testing.T) {
	m := newTestMessage()
	m.Flight.Airline = "aa"

	frames, _ := NewParser().Parse([]byte(m.Encode()))
	require.Len(t, frames, 1)
	require.False(t, frames[0].IsValid())

	issues := frames[0].Validate()
	require.Len(t, issues, 1)
	require.Equal(t, "Airline", issues[0].Field)
	require.Equal(t, ".F.Airline: The airline must be 2 alphanumeric characters.", issues[0].String())
}

func TestValidateMalformedTagBlock(t *testing.T) {
	text := strings.Replace(newTestMessage().Encode(), "0001123456001", "00011234560001", 1)

	frames, _ := NewParser().Parse([]byte(text))
	require.Len(t, frames, 1)

	issues := frames[0].Validate()
	require.Len(t, issues, 1)
	require.Equal(t, "TagNumbers", issues[0].Field)
}

func TestValidateOrder(t *testing.T) {
	m := newTestMessage()
	m.Version.AirportCode = ""
	m.Passenger.Surname = ""
	m.Tags.TagNumbers = nil
	m.Flight.Airline = ""

	var fields []string
	for _, issue := range Validate(m) {
		fields = append(fields, issue.Segment+issue.Field)
	}
	require.Equal(t, []string{".FAirline", ".NTagNumbers", ".PSurname", ".VAirportCode"}, fields)
}
