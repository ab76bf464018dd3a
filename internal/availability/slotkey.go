// Package availability implements the weekly availability workflow: slot
// key encoding, week navigation, the submit / request-changes state machine
// and the per-cell display classification consumed by the frontend grid.
package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// The working day is divided into fixed half-hour slots from 04:30 to
// midnight. Slot indices across the whole system index into this list.
const SlotCount = 39

var slotLabels = buildSlotLabels()

// TimeSlotLabels returns the shared ordered list of half-hour labels, e.g.
// "4.30AM - 5.00AM".
func TimeSlotLabels() []string {
	labels := make([]string, len(slotLabels))
	copy(labels, slotLabels)
	return labels
}

func buildSlotLabels() []string {
	labels := make([]string, 0, SlotCount)
	current := time.Date(2000, 1, 1, 4, 30, 0, 0, time.UTC)
	for i := 0; i < SlotCount; i++ {
		end := current.Add(30 * time.Minute)
		labels = append(labels, fmt.Sprintf("%s - %s", formatSlotTime(current), formatSlotTime(end)))
		current = end
	}
	return labels
}

func formatSlotTime(t time.Time) string {
	return t.Format("3.04PM")
}

var ErrMalformedKey = errors.New("malformed slot key")

// SlotKey identifies one half-hour cell of the grid: a calendar date plus
// an index into the shared slot label list.
type SlotKey struct {
	Date  string
	Index int32
}

// EncodeSlotKey produces the stable string form "<ISO date>-<index>".
func EncodeSlotKey(date string, index int32) string {
	return fmt.Sprintf("%s-%d", date, index)
}

func (k SlotKey) String() string {
	return EncodeSlotKey(k.Date, k.Index)
}

// DecodeSlotKey parses the string form back into its parts. A key that
// fails to parse indicates a caller bug or corrupted data, never user
// input, so the error should be logged rather than swallowed.
func DecodeSlotKey(s string) (SlotKey, error) {
	sep := strings.LastIndexByte(s, '-')
	if sep <= 0 || sep == len(s)-1 {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}

	dateStr, indexStr := s[:sep], s[sep+1:]
	if _, err := time.Parse(DateLayout, dateStr); err != nil {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}

	index, err := strconv.ParseInt(indexStr, 10, 32)
	if err != nil || index < 0 || index >= SlotCount {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrMalformedKey, s)
	}

	return SlotKey{Date: dateStr, Index: int32(index)}, nil
}
