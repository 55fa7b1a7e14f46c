package utils

import (
	"errors"
	"strings"
	"time"
)

// CalendarLayout renders dates like "Sun Jan 15 2023".
const CalendarLayout = "Mon Jan 02 2006"

var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate parses an ISO date or timestamp and returns the calendar day it
// falls on, as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return CalendarDay(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// CalendarDay truncates t to midnight UTC of the same calendar day.
func CalendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatCalendar(t time.Time) string {
	return t.UTC().Format(CalendarLayout)
}
