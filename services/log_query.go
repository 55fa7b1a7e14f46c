package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"ExerciseTracker/models"
	"ExerciseTracker/utils"
)

// epoch is the lower bound used when no "from" is given.
var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// FilterByDate keeps entries whose date lies in [from, to], bounds included.
func FilterByDate(entries []models.Exercise, from, to time.Time) []models.Exercise {
	out := make([]models.Exercise, 0, len(entries))
	for _, e := range entries {
		d := utils.CalendarDay(e.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortNewestFirst orders entries by date descending. Entries on the same
// day keep their insertion order.
func SortNewestFirst(entries []models.Exercise) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

func RenderLog(entries []models.Exercise) []models.LogEntry {
	out := make([]models.LogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        utils.FormatCalendar(e.Date),
		})
	}
	return out
}

// ParseLimit reports whether raw is a usable limit. Anything that is not a
// non-negative integer means "no limit".
func ParseLimit(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ApplyLimit truncates to the first limit entries. Fewer entries than the
// limit are returned as they are.
func ApplyLimit(entries []models.LogEntry, limit int, ok bool) []models.LogEntry {
	if !ok || len(entries) < limit {
		return entries
	}
	return entries[:limit]
}
