package bsm

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Generator limits
const (
	MinPassengerCount = 1
	MaxPassengerCount = 100
	MinFlightNumber   = 1
	MaxFlightNumber   = 9999
	MinTagSequence    = 1
	MaxTagSequence    = 999999
)

// Values stamped on every generated message
const (
	GeneratedSurname   = "TEST"
	GeneratedGivenName = "PASSENGER"
	DefaultAirport     = "MCO"
	GeneratedVersion   = 1
)

// AirlineProfile identifies an airline by its 2 character code and its 3 digit numeric code
type AirlineProfile struct {
	Code        string
	NumericCode string
}

// DefaultProfiles are the airlines the generator cycles through when none are configured
var DefaultProfiles = []AirlineProfile{
	{Code: "AA", NumericCode: "001"},
	{Code: "DL", NumericCode: "006"},
	{Code: "UA", NumericCode: "016"},
	{Code: "WN", NumericCode: "526"},
}

// DefaultDestinations are the airports a generated flight can fly to
var DefaultDestinations = []string{"CAE", "BNA", "LBB", "MSY", "OAK", "PIE", "RSW", "VPS"}

var classesOfTravel = strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")

// TagGenerator issues sequential 10 digit tag numbers for one airline:
// a leading 0, the 3 digit airline numeric code and a 6 digit sequence.
type TagGenerator struct {
	Profile  AirlineProfile
	sequence int
}

// NewTagGenerator creates a tag generator starting at the first sequence number
func NewTagGenerator(profile AirlineProfile) *TagGenerator {
	return &TagGenerator{Profile: profile, sequence: MinTagSequence}
}

// Next returns the next tag number. The sequence wraps from 999999 back to 1.
func (g *TagGenerator) Next() string {
	if g.sequence < MinTagSequence {
		g.sequence = MinTagSequence
	}
	tag := fmt.Sprintf("0%s%06d", g.Profile.NumericCode, g.sequence)

	g.sequence++
	if g.sequence > MaxTagSequence {
		g.sequence = MinTagSequence
	}
	return tag
}

// Option configures a Generator
type Option func(*Generator)

// WithProfiles sets the airlines to cycle through
func WithProfiles(profiles []AirlineProfile) Option {
	return func(g *Generator) {
		if len(profiles) > 0 {
			g.profiles = profiles
		}
	}
}

// WithDestinations sets the airports a flight can fly to
func WithDestinations(destinations []string) Option {
	return func(g *Generator) {
		if len(destinations) > 0 {
			g.destinations = destinations
		}
	}
}

// WithAirport sets the airport stamped in the .V element
func WithAirport(code string) Option {
	return func(g *Generator) {
		if code != "" {
			g.airport = code
		}
	}
}

// WithClock sets the clock used for the flight date
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithRand sets the random source used to pick destinations and classes of travel
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// Generator produces synthetic BSMs. Every 100 passengers the flight number advances,
// the next airline is used and a new destination is picked.
//
// A Generator is not safe for concurrent use; callers must serialize Generate.
type Generator struct {
	profiles     []AirlineProfile
	destinations []string
	airport      string
	now          func() time.Time
	rand         *rand.Rand

	tagGenerators  []*TagGenerator
	profileIndex   int
	destination    string
	flightNumber   int
	passengerCount int
}

// NewGenerator creates a generator
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		profiles:       DefaultProfiles,
		destinations:   DefaultDestinations,
		airport:        DefaultAirport,
		now:            time.Now,
		rand:           rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
		flightNumber:   MinFlightNumber,
		passengerCount: MinPassengerCount,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.tagGenerators = make([]*TagGenerator, len(g.profiles))
	for i, profile := range g.profiles {
		g.tagGenerators[i] = NewTagGenerator(profile)
	}
	g.pickDestination()

	return g
}

// Generate returns the next message
func (g *Generator) Generate() *Message {
	tags := g.tagGenerators[g.profileIndex]

	m := &Message{
		ChangeOfStatus: Add,
		Flight: &FlightInfo{
			Airline:       tags.Profile.Code,
			FlightNumber:  fmt.Sprintf("%04d", g.flightNumber),
			FlightDate:    FormatFlightDate(g.now()),
			Destination:   g.destination,
			ClassOfTravel: classesOfTravel[g.rand.IntN(len(classesOfTravel))],
		},
		Tags: &BaggageTags{
			TagNumbers: []string{tags.Next()},
		},
		Passenger: &PassengerName{
			Surname:    GeneratedSurname,
			GivenNames: []string{fmt.Sprintf("%s%d", GeneratedGivenName, g.passengerCount)},
		},
		Version: &VersionInfo{
			Version:         GeneratedVersion,
			SourceIndicator: LocalSource,
			AirportCode:     g.airport,
		},
	}

	g.nextPassenger()
	return m
}

// nextPassenger advances the passenger count and rolls the flight over after the last passenger
func (g *Generator) nextPassenger() {
	g.passengerCount++
	if g.passengerCount <= MaxPassengerCount {
		return
	}

	g.passengerCount = MinPassengerCount
	g.nextFlightNumber()
	g.nextProfile()
	g.pickDestination()
}

func (g *Generator) nextFlightNumber() {
	g.flightNumber++
	if g.flightNumber > MaxFlightNumber {
		g.flightNumber = MinFlightNumber
	}
}

func (g *Generator) nextProfile() {
	g.profileIndex = (g.profileIndex + 1) % len(g.tagGenerators)
}

func (g *Generator) pickDestination() {
	g.destination = g.destinations[g.rand.IntN(len(g.destinations))]
}

// FormatFlightDate formats t as the 2 digit day followed by the capitalized month abbreviation, e.g. 01JAN
func FormatFlightDate(t time.Time) string {
	return strings.ToUpper(t.Format("02Jan"))
}
