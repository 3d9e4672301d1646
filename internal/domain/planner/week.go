// Package planner holds the weekly plan model and the week arithmetic it is keyed by.
//
// Weeks start on Monday. Day indexes run 0 (Monday) through 6 (Sunday), which differs
// from time.Weekday where Sunday is 0.
package planner

import (
	"errors"
	"time"
)

const DaysPerWeek = 7

// WeekKeyLayout is the storage form of a week start.
const WeekKeyLayout = "2006-01-02"

var ErrInvalidWeekOffset = errors.New("weekOffset must be 0 (current week) or 1 (next week)")

var dayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Clock supplies the current time.
type Clock func() time.Time

func SystemClock() time.Time { return time.Now() }

func ValidDay(day int) bool { return day >= 0 && day < DaysPerWeek }

func DayName(day int) string {
	if !ValidDay(day) {
		return ""
	}
	return dayNames[day]
}

// DayIndex maps a time.Weekday onto the Monday-first index.
func DayIndex(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// WeekStart returns Monday 00:00 of the week containing ref, moved by offset whole weeks.
// Day arithmetic goes through time.Date so month ends and DST shifts never skip a day.
func WeekStart(ref time.Time, offset int) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d-DayIndex(ref.Weekday())+7*offset, 0, 0, 0, 0, ref.Location())
}

// DayDate returns midnight of day index day within the week starting at start.
func DayDate(start time.Time, day int) time.Time {
	y, m, d := start.Date()
	return time.Date(y, m, d+day, 0, 0, 0, 0, start.Location())
}

func WeekDates(start time.Time) [DaysPerWeek]time.Time {
	var out [DaysPerWeek]time.Time
	for i := range out {
		out[i] = DayDate(start, i)
	}
	return out
}

// WeekEnd is Sunday 23:59:59.999 of the week starting at start.
func WeekEnd(start time.Time) time.Time {
	y, m, d := start.Date()
	return time.Date(y, m, d+6, 23, 59, 59, int(999*time.Millisecond), start.Location())
}

// Today truncates now to local midnight.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// IsPast reports whether date falls strictly before the day of now.
func IsPast(date, now time.Time) bool {
	return Today(date).Before(Today(now))
}

func WeekKey(start time.Time) string { return start.Format(WeekKeyLayout) }

// ParseWeekKey is the inverse of WeekKey in loc.
func ParseWeekKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(WeekKeyLayout, key, loc)
}

// Week is a resolved planning week.
type Week struct {
	Start  time.Time
	End    time.Time
	Offset int
}

func (w Week) Key() string { return WeekKey(w.Start) }

func (w Week) DayDate(day int) time.Time { return DayDate(w.Start, day) }

// ResolveWeek resolves the current (offset 0) or next (offset 1) week relative to now.
func ResolveWeek(now time.Time, offset int) (Week, error) {
	if offset != 0 && offset != 1 {
		return Week{}, ErrInvalidWeekOffset
	}
	start := WeekStart(now, offset)
	return Week{Start: start, End: WeekEnd(start), Offset: offset}, nil
}

// OffsetFromNextWeek converts the transport-level "next week" flag into an offset.
func OffsetFromNextWeek(next bool) int {
	if next {
		return 1
	}
	return 0
}
