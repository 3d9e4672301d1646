package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/creatorhub-backend/internal/domain/ideas"
)

// DayView is the read model for one slot, synthesized when no entry is stored.
type DayView struct {
	DayOfWeek int            `json:"dayOfWeek"`
	DayName   string         `json:"dayName"`
	Date      time.Time      `json:"date"`
	IsPast    bool           `json:"isPast"`
	IdeaID    *uuid.UUID     `json:"ideaId"`
	Idea      *ideas.Summary `json:"idea"`
	Note      string         `json:"note"`
	Status    Status         `json:"status"`
	PlanID    *uuid.UUID     `json:"planId"`
}

type WeekView struct {
	WeekStart time.Time `json:"weekStart"`
	WeekEnd   time.Time `json:"weekEnd"`
	Days      []DayView `json:"days"`
}

// BuildDayView merges a possibly nil entry and its resolved idea into a view.
// An entry whose idea could not be resolved reports no idea at all.
func BuildDayView(week Week, day int, now time.Time, entry *Entry, idea *ideas.Idea) DayView {
	date := week.DayDate(day)
	v := DayView{
		DayOfWeek: day,
		DayName:   DayName(day),
		Date:      date,
		IsPast:    IsPast(date, now),
		Status:    StatusPlanned,
	}
	if entry == nil {
		return v
	}
	id := entry.ID
	v.PlanID = &id
	v.Note = entry.Note
	if entry.Status != "" {
		v.Status = entry.Status
	}
	if entry.IdeaID != nil && idea != nil && idea.ID == *entry.IdeaID {
		ideaID := idea.ID
		v.IdeaID = &ideaID
		v.Idea = idea.Summary()
	}
	return v
}

// BuildWeekView always yields seven days in order; entries and ideas may be sparse.
func BuildWeekView(week Week, now time.Time, entries []*Entry, ideasByID map[uuid.UUID]*ideas.Idea) WeekView {
	byDay := make(map[int]*Entry, len(entries))
	for _, e := range entries {
		if e != nil && ValidDay(e.DayOfWeek) {
			byDay[e.DayOfWeek] = e
		}
	}
	days := make([]DayView, 0, DaysPerWeek)
	for day := 0; day < DaysPerWeek; day++ {
		e := byDay[day]
		var idea *ideas.Idea
		if e != nil && e.IdeaID != nil {
			idea = ideasByID[*e.IdeaID]
		}
		days = append(days, BuildDayView(week, day, now, e, idea))
	}
	return WeekView{WeekStart: week.Start, WeekEnd: week.End, Days: days}
}

// IdeaIDs collects the distinct idea references of entries.
func IdeaIDs(entries []*Entry) []uuid.UUID {
	seen := map[uuid.UUID]bool{}
	var out []uuid.UUID
	for _, e := range entries {
		if e == nil || e.IdeaID == nil || seen[*e.IdeaID] {
			continue
		}
		seen[*e.IdeaID] = true
		out = append(out, *e.IdeaID)
	}
	return out
}
