package bsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightInfoDecode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected FlightInfo
	}{
		{"all fields", ".F/AA1234/16OCT/MSY/A\n", FlightInfo{"AA", "1234", "16OCT", "MSY", "A"}},
		{"no class", ".F/AA1234/16OCT/MSY\n", FlightInfo{"AA", "1234", "16OCT", "MSY", ""}},
		{"no destination", ".F/AA1234/16OCT\n", FlightInfo{"AA", "1234", "16OCT", "", ""}},
		{"flight suffix", ".F/DL0042B/01JAN\r\n", FlightInfo{"DL", "0042B", "01JAN", "", ""}},
		{"short flight id", ".F/AA12/16OCT/MSY\n", FlightInfo{"", "", "16OCT", "MSY", ""}},
		{"empty", ".F/\n", FlightInfo{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var f FlightInfo
			f.Decode(test.text)
			require.Equal(t, test.expected, f)
		})
	}
}

func TestFlightInfoEncode(t *testing.T) {
	tests := []struct {
		name     string
		flight   FlightInfo
		expected string
	}{
		{"all fields", FlightInfo{"AA", "1234", "16OCT", "MSY", "A"}, ".F/AA1234/16OCT/MSY/A\n"},
		{"no class", FlightInfo{"AA", "1234", "16OCT", "MSY", ""}, ".F/AA1234/16OCT/MSY\n"},
		{"no destination", FlightInfo{"AA", "1234", "16OCT", "", ""}, ".F/AA1234/16OCT\n"},
		{"class without destination", FlightInfo{"AA", "1234", "16OCT", "", "Y"}, ".F/AA1234/16OCT//Y\n"},
		{"flight id only", FlightInfo{Airline: "AA", FlightNumber: "1234"}, ".F/AA1234\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.flight.Encode())
		})
	}
}

func TestBaggageTagsDecode(t *testing.T) {
	var b BaggageTags
	b.Decode(".N/0001123456003\n")

	require.Equal(t, []string{"0001123456", "0001123457", "0001123458"}, b.TagNumbers)
	require.Equal(t, ".N/0001123456003\n", b.Encode())
}

func TestBaggageTagsDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"count has 4 digits", ".N/00011234560001\n"},
		{"count has 2 digits", ".N/000112345601\n"},
		{"tag not numeric", ".N/00011234A6001\n"},
		{"count not numeric", ".N/00011234560X1\n"},
		{"signed count", ".N/0001123456+01\n"},
		{"empty", ".N/\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var b BaggageTags
			b.Decode(test.text)
			assert.Empty(t, b.TagNumbers)
			assert.Equal(t, 0, b.Count())
			assert.Equal(t, "", b.Encode())
		})
	}
}

func TestBaggageTagsCrossesDigitBoundary(t *testing.T) {
	var b BaggageTags
	b.Decode(".N/0000000998003\n")
	require.Equal(t, []string{"0000000998", "0000000999", "0000001000"}, b.TagNumbers)
}

func TestPassengerNameDecode(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		surname    string
		givenNames []string
	}{
		{"one given name", ".P/1TEST/PASSENGER\n", "TEST", []string{"PASSENGER"}},
		{"two digit count", ".P/12SMITH/A/B/C/D/E/F/G/H/I/J/K/L\n", "SMITH", []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}},
		{"no count", ".P/DOE/JANE\n", "DOE", []string{"JANE"}},
		{"no given names", ".P/0DOE\n", "DOE", nil},
		{"empty given names skipped", ".P/2DOE//JOHN/\n", "DOE", []string{"JOHN"}},
		{"count only", ".P/1\n", "", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var p PassengerName
			p.Decode(test.text)
			assert.Equal(t, test.surname, p.Surname)
			assert.Equal(t, test.givenNames, p.GivenNames)
		})
	}
}

func TestPassengerNameEncode(t *testing.T) {
	p := PassengerName{Surname: "TEST", GivenNames: []string{"PASSENGER", "OTHER"}}
	require.Equal(t, ".P/2TEST/PASSENGER/OTHER\n", p.Encode())

	empty := PassengerName{Surname: "DOE"}
	require.Equal(t, ".P/0DOE\n", empty.Encode())
}

func TestVersionInfoDecode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected VersionInfo
	}{
		{"valid", ".V/1LMCO\n", VersionInfo{1, "L", "MCO"}},
		{"transfer", ".V/9TATL\r\n", VersionInfo{9, "T", "ATL"}},
		{"too short", ".V/1LMC\n", VersionInfo{}},
		{"too long", ".V/1LMCOX\n", VersionInfo{}},
		{"version not numeric", ".V/ALMCO\n", VersionInfo{}},
		{"supplementary data ignored", ".V/1LMCO/PART1\n", VersionInfo{1, "L", "MCO"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var v VersionInfo
			v.Decode(test.text)
			require.Equal(t, test.expected, v)
		})
	}
}

func TestVersionInfoEncode(t *testing.T) {
	v := VersionInfo{Version: 1, SourceIndicator: LocalSource, AirportCode: "MCO"}
	require.Equal(t, ".V/1LMCO\n", v.Encode())
}
