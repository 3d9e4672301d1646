package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/creatorhub-backend/internal/domain/ideas"
)

func TestBuildWeekViewAlwaysSevenDays(t *testing.T) {
	now := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)
	week, _ := ResolveWeek(now, 0)

	view := BuildWeekView(week, now, nil, nil)
	if len(view.Days) != DaysPerWeek {
		t.Fatalf("days: want=%d got=%d", DaysPerWeek, len(view.Days))
	}
	for i, d := range view.Days {
		if d.DayOfWeek != i {
			t.Fatalf("day %d out of order: %+v", i, d)
		}
		if d.PlanID != nil || d.IdeaID != nil || d.Idea != nil || d.Note != "" || d.Status != StatusPlanned {
			t.Fatalf("day %d should be an empty default view: %+v", i, d)
		}
		wantPast := i < 2
		if d.IsPast != wantPast {
			t.Fatalf("day %d isPast: want=%v got=%v", i, wantPast, d.IsPast)
		}
	}
	if !view.WeekStart.Equal(week.Start) || !view.WeekEnd.Equal(week.End) {
		t.Fatalf("unexpected week bounds: %+v", view)
	}
}

func TestBuildWeekViewMergesEntriesAndIdeas(t *testing.T) {
	now := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	week, _ := ResolveWeek(now, 0)
	userID := uuid.New()

	idea := &ideas.Idea{ID: uuid.New(), UserID: userID, Title: "hook test", Tags: datatypes.JSONSlice[string]{"a"}}
	dangling := uuid.New()

	withIdea := NewEntry(userID, week, 2, now)
	withIdea.IdeaID = &idea.ID
	withIdea.Status = StatusPosted
	withDangling := NewEntry(userID, week, 4, now)
	withDangling.IdeaID = &dangling
	withDangling.Note = "remember lights"

	view := BuildWeekView(week, now, []*Entry{withIdea, withDangling}, map[uuid.UUID]*ideas.Idea{idea.ID: idea})

	d2 := view.Days[2]
	if d2.PlanID == nil || *d2.PlanID != withIdea.ID {
		t.Fatalf("day 2 planId: %+v", d2)
	}
	if d2.Idea == nil || d2.Idea.Title != "hook test" || len(d2.Idea.Tags) != 1 {
		t.Fatalf("day 2 idea summary: %+v", d2.Idea)
	}
	if d2.Status != StatusPosted {
		t.Fatalf("day 2 status: got=%s", d2.Status)
	}

	d4 := view.Days[4]
	if d4.Idea != nil || d4.IdeaID != nil {
		t.Fatalf("dangling idea should resolve to null: %+v", d4)
	}
	if d4.Note != "remember lights" || d4.PlanID == nil {
		t.Fatalf("day 4 entry fields lost: %+v", d4)
	}
}

func TestIdeaIDsDeduplicates(t *testing.T) {
	id := uuid.New()
	got := IdeaIDs([]*Entry{{IdeaID: &id}, {IdeaID: &id}, {}, nil})
	if len(got) != 1 || got[0] != id {
		t.Fatalf("IdeaIDs: %v", got)
	}
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"planned", " posted ", "skipped"} {
		if _, ok := ParseStatus(raw); !ok {
			t.Fatalf("ParseStatus(%q) should be valid", raw)
		}
	}
	for _, raw := range []string{"", "Posted", "done"} {
		if _, ok := ParseStatus(raw); ok {
			t.Fatalf("ParseStatus(%q) should be invalid", raw)
		}
	}
}
