package bsm

import (
	"fmt"
	"strconv"
)

// Tag block limits
const (
	TagNumberLength = 10
	MinTagCount     = 1
	MaxTagCount     = 999

	tagCountLength = 3
)

// BaggageTags represents the baggage tag details element (.N).
//
// Only the first tag number and the number of consecutive tags travel on the wire;
// the full list is rebuilt on decode.
type BaggageTags struct {
	TagNumbers []string
}

// Count returns the number of tag numbers in the block
func (b *BaggageTags) Count() int {
	return len(b.TagNumbers)
}

// Decode parses .N/<10 digit tag><3 digit count>
func (b *BaggageTags) Decode(text string) {
	payload := stripElement(text, DotN)
	if len(payload) != TagNumberLength+tagCountLength {
		return
	}

	first, count := payload[:TagNumberLength], payload[TagNumberLength:]
	if !isDigits(first) || !isDigits(count) {
		return
	}

	start, err := strconv.ParseUint(first, 10, 64)
	if err != nil {
		return
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return
	}

	tags := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tags = append(tags, FormatTagNumber(start+uint64(i)))
	}
	b.TagNumbers = tags
}

// Encode emits nothing for an empty block, else the first tag and the count
func (b *BaggageTags) Encode() string {
	if b.Count() == 0 {
		return ""
	}
	return fmt.Sprintf("%s%s%s%03d%s", DotN, elementSeparator, b.TagNumbers[0], b.Count(), lineBreak)
}

// FormatTagNumber zero-pads a tag number to 10 digits
func FormatTagNumber(n uint64) string {
	return fmt.Sprintf("%0*d", TagNumberLength, n)
}
