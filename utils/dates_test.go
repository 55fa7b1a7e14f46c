package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := map[string]time.Time{
		"2023-01-15":                time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		" 2023-01-15 ":              time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		"2023-01-15T18:30:00Z":      time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		"2023-01-15T23:30:00-02:00": time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC),
		"2023-01-15T08:00":          time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s: got %v", in, got)
	}

	for _, bad := range []string{"", "abc", "2023-13-01", "15/01/2023"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestFormatCalendar(t *testing.T) {
	assert.Equal(t, "Sun Jan 15 2023", FormatCalendar(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Thu Jan 05 2023", FormatCalendar(time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)))
}

func TestCalendarDay(t *testing.T) {
	loc := time.FixedZone("x", 5*3600)
	got := CalendarDay(time.Date(2023, 3, 1, 2, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), got)
}
