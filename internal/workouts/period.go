package workouts

import (
	"sort"
	"time"
)

type Period string

const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodYear    Period = "year"
	PeriodAllTime Period = "all-time"
)

var Periods = []Period{PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodAllTime}

// ParsePeriod reports whether the token is a known period. Unknown tokens are
// still usable with DateRange, they just fall back to today.
func ParsePeriod(s string) (Period, bool) {
	for _, p := range Periods {
		if string(p) == s {
			return p, true
		}
	}
	return Period(s), false
}

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// DateRange returns the interval covered by the period, relative to now.
// All boundaries are calendar midnights in now's location, except all-time
// which ends exactly one day after now.
func DateRange(now time.Time, period Period) Interval {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch period {
	case PeriodToday:
		return Interval{Start: today, End: today.AddDate(0, 0, 1)}
	case PeriodWeek:
		// weeks start on sunday
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		return Interval{Start: weekStart, End: weekStart.AddDate(0, 0, 7)}
	case PeriodMonth:
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		return Interval{Start: monthStart, End: monthStart.AddDate(0, 1, 0)}
	case PeriodYear:
		yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return Interval{Start: yearStart, End: yearStart.AddDate(1, 0, 0)}
	case PeriodAllTime:
		return Interval{Start: time.Unix(0, 0).In(loc), End: now.Add(24 * time.Hour)}
	default:
		return Interval{Start: today, End: today.AddDate(0, 0, 1)}
	}
}

// FilterByPeriod returns the records whose date falls inside the period
// interval, sorted ascending by date. Records with unparsable dates are skipped.
func FilterByPeriod(store Store, period Period, now time.Time) []WorkoutRecord {
	interval := DateRange(now, period)

	filtered := make([]WorkoutRecord, 0, len(store))
	for _, w := range store {
		day, err := w.Day(now.Location())
		if err != nil {
			continue
		}
		if interval.Contains(day) {
			filtered = append(filtered, w)
		}
	}

	sortByDate(filtered)
	return filtered
}

func sortByDate(records []WorkoutRecord) {
	// YYYY-MM-DD sorts lexicographically in date order
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
}
