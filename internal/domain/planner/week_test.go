package planner

import (
	"testing"
	"time"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("timezone %s unavailable: %v", name, err)
	}
	return loc
}

func TestWeekStartScenario(t *testing.T) {
	wed := time.Date(2024, 3, 13, 15, 4, 5, 0, time.UTC)
	if got := WeekKey(WeekStart(wed, 0)); got != "2024-03-11" {
		t.Fatalf("current week start: want=2024-03-11 got=%s", got)
	}
	if got := WeekKey(WeekStart(wed, 1)); got != "2024-03-18" {
		t.Fatalf("next week start: want=2024-03-18 got=%s", got)
	}
}

func TestWeekStartSundayBelongsToPreviousMonday(t *testing.T) {
	sun := time.Date(2024, 3, 17, 23, 59, 0, 0, time.UTC)
	if got := WeekKey(WeekStart(sun, 0)); got != "2024-03-11" {
		t.Fatalf("sunday week start: want=2024-03-11 got=%s", got)
	}
	mon := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	if got := WeekKey(WeekStart(mon, 0)); got != "2024-03-18" {
		t.Fatalf("monday week start: want=2024-03-18 got=%s", got)
	}
}

func TestWeekStartProperties(t *testing.T) {
	locs := []*time.Location{time.UTC, mustLoad(t, "America/New_York"), mustLoad(t, "Europe/Berlin")}
	for _, loc := range locs {
		ref := time.Date(2023, 12, 20, 13, 30, 0, 0, loc)
		for i := 0; i < 24*500; i += 7 {
			d := ref.Add(time.Duration(i) * time.Hour)
			ws := WeekStart(d, 0)
			if ws.Weekday() != time.Monday {
				t.Fatalf("%s: week start of %s is %s", loc, d, ws.Weekday())
			}
			if ws.Hour() != 0 || ws.Minute() != 0 || ws.Second() != 0 || ws.Nanosecond() != 0 {
				t.Fatalf("%s: week start not midnight: %s", loc, ws)
			}
			if again := WeekStart(ws, 0); !again.Equal(ws) {
				t.Fatalf("%s: not idempotent: %s vs %s", loc, again, ws)
			}
			if d.Before(ws) || d.After(WeekEnd(ws)) {
				t.Fatalf("%s: %s outside [%s, %s]", loc, d, ws, WeekEnd(ws))
			}
		}
	}
}

func TestWeekDatesAcrossDSTAndYearEnd(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	// DST starts Sunday 2024-03-10 in New York.
	start := WeekStart(time.Date(2024, 3, 6, 12, 0, 0, 0, ny), 0)
	dates := WeekDates(start)
	for i, d := range dates {
		want := time.Date(2024, 3, 4+i, 0, 0, 0, 0, ny)
		if !d.Equal(want) {
			t.Fatalf("day %d: want=%s got=%s", i, want, d)
		}
	}

	yearEnd := WeekStart(time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), 0)
	if WeekKey(yearEnd) != "2024-12-30" {
		t.Fatalf("year boundary week start: got=%s", WeekKey(yearEnd))
	}
	if got := WeekDates(yearEnd)[6].Format(WeekKeyLayout); got != "2025-01-05" {
		t.Fatalf("year boundary sunday: got=%s", got)
	}
}

func TestWeekEnd(t *testing.T) {
	start := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 3, 17, 23, 59, 59, 999000000, time.UTC)
	if got := WeekEnd(start); !got.Equal(want) {
		t.Fatalf("WeekEnd: want=%s got=%s", want, got)
	}
}

func TestResolveWeek(t *testing.T) {
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)
	w, err := ResolveWeek(now, 1)
	if err != nil {
		t.Fatalf("ResolveWeek: %v", err)
	}
	if w.Key() != "2024-03-18" || w.Offset != 1 {
		t.Fatalf("unexpected week: %+v", w)
	}
	if _, err := ResolveWeek(now, 2); err != ErrInvalidWeekOffset {
		t.Fatalf("expected ErrInvalidWeekOffset, got %v", err)
	}
	if _, err := ResolveWeek(now, -1); err != ErrInvalidWeekOffset {
		t.Fatalf("expected ErrInvalidWeekOffset, got %v", err)
	}
}

func TestIsPast(t *testing.T) {
	now := time.Date(2024, 3, 13, 0, 0, 1, 0, time.UTC)
	if !IsPast(time.Date(2024, 3, 12, 23, 59, 0, 0, time.UTC), now) {
		t.Fatalf("yesterday should be past")
	}
	if IsPast(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), now) {
		t.Fatalf("today should not be past")
	}
}

func TestDayNamesAndIndex(t *testing.T) {
	if DayName(0) != "Monday" || DayName(6) != "Sunday" || DayName(7) != "" {
		t.Fatalf("unexpected day names")
	}
	if DayIndex(time.Sunday) != 6 || DayIndex(time.Monday) != 0 || DayIndex(time.Saturday) != 5 {
		t.Fatalf("unexpected day index mapping")
	}
}

func TestParseWeekKeyRoundTrip(t *testing.T) {
	start := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	got, err := ParseWeekKey(WeekKey(start), time.UTC)
	if err != nil {
		t.Fatalf("ParseWeekKey: %v", err)
	}
	if !got.Equal(start) {
		t.Fatalf("round trip: want=%s got=%s", start, got)
	}
}
