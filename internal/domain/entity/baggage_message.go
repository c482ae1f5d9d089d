// internal/domain/entity/baggage_message.go
package entity

import (
	"time"

	"bsm-service/pkg/bsm"
)

// BaggageMessage is the stored state of a bag, keyed by its first tag number
type BaggageMessage struct {
	ID              string      `bson:"_id,omitempty"`
	TagNumber       string      `bson:"tagNumber"` // unique index
	TagNumbers      []string    `bson:"tagNumbers"`
	ChangeOfStatus  string      `bson:"changeOfStatus"`
	Airline         string      `bson:"airline,omitempty"`
	FlightNumber    string      `bson:"flightNumber,omitempty"`
	FlightDate      string      `bson:"flightDate,omitempty"`
	Destination     string      `bson:"destination,omitempty"`
	ClassOfTravel   string      `bson:"classOfTravel,omitempty"`
	Surname         string      `bson:"surname,omitempty"`
	GivenNames      []string    `bson:"givenNames,omitempty"`
	Version         int         `bson:"version,omitempty"`
	SourceIndicator string      `bson:"sourceIndicator,omitempty"`
	AirportCode     string      `bson:"airportCode,omitempty"`
	Raw             string      `bson:"raw"`
	Valid           bool        `bson:"valid"`
	Issues          []bsm.Issue `bson:"issues,omitempty"`
	ReceivedAt      time.Time   `bson:"receivedAt"`
	CreatedAt       time.Time   `bson:"createdAt"`
	UpdatedAt       time.Time   `bson:"updatedAt"`
}

// NewBaggageMessage flattens a decoded message into a stored record.
// TagNumber is empty when the message carries no tags.
func NewBaggageMessage(m *bsm.Message) *BaggageMessage {
	issues := bsm.Validate(m)
	record := &BaggageMessage{
		ChangeOfStatus: string(m.ChangeOfStatus),
		Raw:            m.Encode(),
		Valid:          len(issues) == 0,
		Issues:         issues,
		ReceivedAt:     m.ReceivedOn,
	}

	if m.Tags != nil && len(m.Tags.TagNumbers) > 0 {
		record.TagNumber = m.Tags.TagNumbers[0]
		record.TagNumbers = m.Tags.TagNumbers
	}
	if f := m.Flight; f != nil {
		record.Airline = f.Airline
		record.FlightNumber = f.FlightNumber
		record.FlightDate = f.FlightDate
		record.Destination = f.Destination
		record.ClassOfTravel = f.ClassOfTravel
	}
	if p := m.Passenger; p != nil {
		record.Surname = p.Surname
		record.GivenNames = p.GivenNames
	}
	if v := m.Version; v != nil {
		record.Version = v.Version
		record.SourceIndicator = v.SourceIndicator
		record.AirportCode = v.AirportCode
	}

	return record
}
