package bsm

import "slices"

// MessagesEqual compares the change of status and every segment of two messages.
// ReceivedOn is not compared.
func MessagesEqual(x, y *Message) bool {
	if x == nil || y == nil {
		return x == y
	}

	return x.ChangeOfStatus == y.ChangeOfStatus &&
		FlightInfoEqual(x.Flight, y.Flight) &&
		BaggageTagsEqual(x.Tags, y.Tags) &&
		PassengerNameEqual(x.Passenger, y.Passenger) &&
		VersionInfoEqual(x.Version, y.Version)
}

// FlightInfoEqual compares two flight elements field by field
func FlightInfoEqual(x, y *FlightInfo) bool {
	if x == nil || y == nil {
		return x == y
	}
	return *x == *y
}

// BaggageTagsEqual compares two tag blocks by count and containment
func BaggageTagsEqual(x, y *BaggageTags) bool {
	if x == nil || y == nil {
		return x == y
	}
	return sameElements(x.TagNumbers, y.TagNumbers)
}

// PassengerNameEqual compares surnames and given names (by count and containment)
func PassengerNameEqual(x, y *PassengerName) bool {
	if x == nil || y == nil {
		return x == y
	}
	return x.Surname == y.Surname && sameElements(x.GivenNames, y.GivenNames)
}

// VersionInfoEqual compares two version elements field by field
func VersionInfoEqual(x, y *VersionInfo) bool {
	if x == nil || y == nil {
		return x == y
	}
	return *x == *y
}

// sameElements reports whether both lists have the same length and every element of x is in y.
// Multiplicity is not checked: [A A B] and [A B B] compare equal.
func sameElements(x, y []string) bool {
	if len(x) != len(y) {
		return false
	}
	for _, s := range x {
		if !slices.Contains(y, s) {
			return false
		}
	}
	return true
}
