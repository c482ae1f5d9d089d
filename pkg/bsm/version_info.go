package bsm

import (
	"strconv"
	"strings"
)

// Baggage source indicators
const (
	LocalSource       = "L"
	RemoteSource      = "R"
	TerminatingSource = "X"
	TransferSource    = "T"
)

// VersionInfo represents the version and supplementary data element (.V)
type VersionInfo struct {
	Version         int    // data dictionary version, 1-9
	SourceIndicator string // L, R, X or T
	AirportCode     string // airport that sent the message
}

const versionPayloadLength = 5

// Decode parses .V/<version><indicator><airport>
func (v *VersionInfo) Decode(text string) {
	payload, _, _ := strings.Cut(stripElement(text, DotV), elementSeparator)
	if len(payload) != versionPayloadLength || !isDigits(payload[:1]) {
		return
	}

	version, err := strconv.Atoi(payload[:1])
	if err != nil {
		return
	}

	v.Version = version
	v.SourceIndicator = payload[1:2]
	v.AirportCode = payload[2:]
}

// Encode emits .V/<version><indicator><airport>
func (v *VersionInfo) Encode() string {
	return DotV + elementSeparator + strconv.Itoa(v.Version) + v.SourceIndicator + v.AirportCode + lineBreak
}
