package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	monday := date(2026, time.January, 5)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", monday},
		{"wednesday", date(2026, time.January, 7)},
		{"sunday belongs to the preceding monday", date(2026, time.January, 11)},
		{"time of day is dropped", time.Date(2026, time.January, 9, 23, 59, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, monday, WeekStart(tt.in))
		})
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(date(2026, time.January, 5))
	require.Len(t, dates, WorkdayCount)
	assert.Equal(t, date(2026, time.January, 5), dates[0])
	assert.Equal(t, date(2026, time.January, 9), dates[4])
}

func TestIsPastDate(t *testing.T) {
	today := time.Date(2026, time.January, 7, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsPastDate(date(2026, time.January, 6), today))
	assert.False(t, IsPastDate(date(2026, time.January, 7), today))
	assert.False(t, IsPastDate(date(2026, time.January, 8), today))
}

func TestPrevWeekClampsAtCurrentWeek(t *testing.T) {
	today := date(2026, time.January, 7) // week of Jan 5

	prev, err := PrevWeek(date(2026, time.January, 12), today)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.January, 5), prev)

	clamped, err := PrevWeek(date(2026, time.January, 5), today)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, date(2026, time.January, 5), clamped)
}

func TestNextWeek(t *testing.T) {
	assert.Equal(t, date(2026, time.January, 12), NextWeek(date(2026, time.January, 5)))
	// non-monday input is normalized first
	assert.Equal(t, date(2026, time.January, 12), NextWeek(date(2026, time.January, 8)))
}
