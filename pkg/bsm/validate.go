package bsm

import (
	"fmt"
	"regexp"
)

// Issue is one field that failed its grammar rule
type Issue struct {
	Segment string `json:"segment" bson:"segment"`
	Field   string `json:"field" bson:"field"`
	Message string `json:"message" bson:"message"`
}

// String formats the issue as <segment>.<field>: <message>
func (i Issue) String() string {
	return fmt.Sprintf("%s.%s: %s", i.Segment, i.Field, i.Message)
}

// rule checks a single field of a segment
type rule[T any] struct {
	field   string
	message string
	valid   func(T) bool
}

var (
	airlinePattern       = regexp.MustCompile(`^[A-Z0-9]{2}$`)
	classOfTravelPattern = regexp.MustCompile(`^([A-Z])?$`)
	destinationPattern   = regexp.MustCompile(`^([A-Z]{3})?$`)
	flightDatePattern    = regexp.MustCompile(`^[0-9]{2}(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)$`)
	flightNumberPattern  = regexp.MustCompile(`^[0-9]{4}([A-Z])?$`)
	airportCodePattern   = regexp.MustCompile(`^[A-Z]{3}$`)
	sourcePattern        = regexp.MustCompile(`^(L|R|X|T)$`)
)

var flightRules = []rule[*FlightInfo]{
	{"Airline", "The airline must be 2 alphanumeric characters.", func(f *FlightInfo) bool { return airlinePattern.MatchString(f.Airline) }},
	{"FlightNumber", "The flight number must be 4 digits and optionally a capital letter.", func(f *FlightInfo) bool { return flightNumberPattern.MatchString(f.FlightNumber) }},
	{"FlightDate", "The flight date must be the 2 digit day of month followed by the first three letters of the month, capitalized.", func(f *FlightInfo) bool { return flightDatePattern.MatchString(f.FlightDate) }},
	{"Destination", "The destination must be 3 capital letters or empty.", func(f *FlightInfo) bool { return destinationPattern.MatchString(f.Destination) }},
	{"ClassOfTravel", "The class of travel must be 1 capital letter or empty.", func(f *FlightInfo) bool { return classOfTravelPattern.MatchString(f.ClassOfTravel) }},
}

var tagRules = []rule[*BaggageTags]{
	{"TagNumbers", fmt.Sprintf("The tag numbers must contain between %d and %d entries.", MinTagCount, MaxTagCount), func(b *BaggageTags) bool {
		return b.Count() >= MinTagCount && b.Count() <= MaxTagCount
	}},
}

var passengerRules = []rule[*PassengerName]{
	{"Surname", "The surname is required.", func(p *PassengerName) bool { return p.Surname != "" }},
}

var versionRules = []rule[*VersionInfo]{
	{"Version", "The data dictionary version number must be between 1 and 9.", func(v *VersionInfo) bool { return v.Version >= 1 && v.Version <= 9 }},
	{"SourceIndicator", "The baggage source indicator must be L, R, X or T.", func(v *VersionInfo) bool { return sourcePattern.MatchString(v.SourceIndicator) }},
	{"AirportCode", "The airport code must be 3 capital letters.", func(v *VersionInfo) bool { return airportCodePattern.MatchString(v.AirportCode) }},
}

// Validate runs the field rules of every segment present in the message.
// An empty result means the message is valid.
func Validate(m *Message) []Issue {
	if m == nil {
		return nil
	}

	var issues []Issue
	if m.Flight != nil {
		issues = evaluate(issues, DotF, m.Flight, flightRules)
	}
	if m.Tags != nil {
		issues = evaluate(issues, DotN, m.Tags, tagRules)
	}
	if m.Passenger != nil {
		issues = evaluate(issues, DotP, m.Passenger, passengerRules)
	}
	if m.Version != nil {
		issues = evaluate(issues, DotV, m.Version, versionRules)
	}
	return issues
}

func evaluate[T any](issues []Issue, segment string, value T, rules []rule[T]) []Issue {
	for _, r := range rules {
		if !r.valid(value) {
			issues = append(issues, Issue{Segment: segment, Field: r.field, Message: r.message})
		}
	}
	return issues
}
