package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/creatorhub-backend/internal/data/repos/testutil"
	domainagg "github.com/yungbote/creatorhub-backend/internal/domain/aggregates"
	"github.com/yungbote/creatorhub-backend/internal/domain/planner"
	"github.com/yungbote/creatorhub-backend/internal/platform/apierr"
)

func TestPlannerReadWeekEmpty(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.seedUser(t, "planner-empty@example.com")

	view, err := env.planner.ReadWeek(ctx, false)
	if err != nil {
		t.Fatalf("ReadWeek: %v", err)
	}
	wantStart := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	if !view.WeekStart.Equal(wantStart) {
		t.Fatalf("week start: want=%s got=%s", wantStart, view.WeekStart)
	}
	if len(view.Days) != planner.DaysPerWeek {
		t.Fatalf("days: want=7 got=%d", len(view.Days))
	}
	for i, d := range view.Days {
		if d.DayOfWeek != i || d.PlanID != nil || d.IdeaID != nil || d.Status != planner.StatusPlanned {
			t.Fatalf("day %d: unexpected view %+v", i, d)
		}
		if wantPast := i < 2; d.IsPast != wantPast {
			t.Fatalf("day %d: isPast want=%v got=%v", i, wantPast, d.IsPast)
		}
	}

	next, err := env.planner.ReadWeek(ctx, true)
	if err != nil {
		t.Fatalf("ReadWeek next: %v", err)
	}
	if want := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC); !next.WeekStart.Equal(want) {
		t.Fatalf("next week start: want=%s got=%s", want, next.WeekStart)
	}
	for _, d := range next.Days {
		if d.IsPast {
			t.Fatalf("next week day %d should not be past", d.DayOfWeek)
		}
	}
}

func TestPlannerAssignThenRead(t *testing.T) {
	env := newTestEnv(t)
	u, ctx := env.seedUser(t, "planner-assign@example.com")
	idea := testutil.SeedIdea(t, context.Background(), env.tx, u.ID, "Studio tour", testNow)

	day, err := env.planner.AssignIdea(ctx, AssignIdeaRequest{DayOfWeek: 2, IdeaID: testutil.PtrUUID(idea.ID)})
	if err != nil {
		t.Fatalf("AssignIdea: %v", err)
	}
	if day.Idea == nil || day.Idea.Title != "Studio tour" || day.PlanID == nil || day.DayName != "Wednesday" {
		t.Fatalf("day view: %+v", day)
	}

	view, err := env.planner.ReadWeek(ctx, false)
	if err != nil {
		t.Fatalf("ReadWeek: %v", err)
	}
	got := view.Days[2]
	if got.IdeaID == nil || *got.IdeaID != idea.ID || got.Idea == nil || got.Idea.Title != "Studio tour" {
		t.Fatalf("read after assign: %+v", got)
	}
	if *got.PlanID != *day.PlanID {
		t.Fatalf("plan id mismatch: %s vs %s", *got.PlanID, *day.PlanID)
	}

	// Second day in the same week conflicts.
	_, err = env.planner.AssignIdea(ctx, AssignIdeaRequest{DayOfWeek: 4, IdeaID: testutil.PtrUUID(idea.ID)})
	if !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(env.hooks.Conflicts) != 1 {
		t.Fatalf("expected one recorded conflict, got %v", env.hooks.Conflicts)
	}

	// Next week is a different week.
	if _, err := env.planner.AssignIdea(ctx, AssignIdeaRequest{DayOfWeek: 4, IdeaID: testutil.PtrUUID(idea.ID), NextWeek: true}); err != nil {
		t.Fatalf("AssignIdea next week: %v", err)
	}
}

func TestPlannerReadWeekHidesDeletedIdea(t *testing.T) {
	env := newTestEnv(t)
	u, ctx := env.seedUser(t, "planner-dangling@example.com")
	idea := testutil.SeedIdea(t, context.Background(), env.tx, u.ID, "gone soon", testNow)
	week, _ := planner.ResolveWeek(testNow, 0)
	entry := testutil.SeedPlanEntry(t, context.Background(), env.tx, u.ID, week, 3, testutil.PtrUUID(idea.ID), planner.StatusPosted, testNow)

	if err := env.ideaSvc.Delete(ctx, idea.ID); err != nil {
		t.Fatalf("Delete idea: %v", err)
	}

	view, err := env.planner.ReadWeek(ctx, false)
	if err != nil {
		t.Fatalf("ReadWeek: %v", err)
	}
	got := view.Days[3]
	if got.IdeaID != nil || got.Idea != nil {
		t.Fatalf("dangling idea should read as null: %+v", got)
	}
	if got.PlanID == nil || *got.PlanID != entry.ID || got.Status != planner.StatusPosted {
		t.Fatalf("entry fields should survive: %+v", got)
	}
}

func TestPlannerUpdateStatusWithoutEntry(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.seedUser(t, "planner-status@example.com")

	_, err := env.planner.UpdateStatus(ctx, true, 0, "posted")
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	_, err = env.planner.UpdateStatus(ctx, true, 0, "finished")
	if !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlannerUpdateNoteThenStatus(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.seedUser(t, "planner-note@example.com")

	note, err := env.planner.UpdateNote(ctx, false, 5, "  batch record  ")
	if err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	if note.Note != "batch record" || note.DayOfWeek != 5 {
		t.Fatalf("note result: %+v", note)
	}

	st, err := env.planner.UpdateStatus(ctx, false, 5, " skipped ")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if st.Status != planner.StatusSkipped {
		t.Fatalf("status result: %+v", st)
	}

	view, err := env.planner.ReadWeek(ctx, false)
	if err != nil {
		t.Fatalf("ReadWeek: %v", err)
	}
	if d := view.Days[5]; d.Note != "batch record" || d.Status != planner.StatusSkipped || d.IdeaID != nil {
		t.Fatalf("day 5: %+v", d)
	}
}

func TestPlannerRejectsPastAndAnonymous(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.seedUser(t, "planner-past@example.com")

	if _, err := env.planner.UpdateNote(ctx, false, 0, "monday"); !domainagg.IsCode(err, domainagg.CodePastDate) {
		t.Fatalf("expected past_date, got %v", err)
	}
	if _, err := env.planner.AssignIdea(ctx, AssignIdeaRequest{DayOfWeek: 1, IdeaID: testutil.PtrUUID(uuid.New())}); !domainagg.IsCode(err, domainagg.CodePastDate) {
		t.Fatalf("expected past_date before idea lookup, got %v", err)
	}

	_, err := env.planner.ReadWeek(context.Background(), false)
	ae, ok := apierr.As(err)
	if !ok || ae.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a user, got %v", err)
	}
}
