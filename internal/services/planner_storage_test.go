package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/yungbote/creatorhub-backend/internal/data/aggregates"
	aggtest "github.com/yungbote/creatorhub-backend/internal/data/aggregates/testutil"
	"github.com/yungbote/creatorhub-backend/internal/data/repos/testutil"
	domainagg "github.com/yungbote/creatorhub-backend/internal/domain/aggregates"
	"github.com/yungbote/creatorhub-backend/internal/http/response"
)

func TestPlannerStorageUnavailableIsServerError(t *testing.T) {
	env := newTestEnv(t)
	_, ctx := env.seedUser(t, "planner-down@example.com")

	runner := &aggtest.InjectedTxRunner{FailBeforeBody: errors.New("connection refused")}
	svc := env.plannerWithRunner(t, runner)

	// Friday of the current week, so the past-day check passes.
	_, err := svc.UpdateNote(ctx, false, 4, "draft outline")
	if !domainagg.IsCode(err, domainagg.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	status, code, msg := response.Classify(err)
	if status != http.StatusInternalServerError || code != string(domainagg.CodeInternal) || msg != "Server error" {
		t.Fatalf("classify: status=%d code=%s msg=%q", status, code, msg)
	}
	if runner.BeginCalls != 1 || runner.BodyCalls != 0 {
		t.Fatalf("runner counters begin=%d body=%d", runner.BeginCalls, runner.BodyCalls)
	}

	last := env.hooks.Operations[len(env.hooks.Operations)-1]
	if last.Name != "Planner.WeeklyPlan.UpdateNote" || last.Status != string(domainagg.CodeInternal) {
		t.Fatalf("observed op: %+v", last)
	}

	view, err := env.planner.ReadWeek(ctx, false)
	if err != nil {
		t.Fatalf("ReadWeek: %v", err)
	}
	if d := view.Days[4]; d.PlanID != nil || d.Note != "" {
		t.Fatalf("failed write left a plan: %+v", d)
	}
}

func TestPlannerAssignRolledBackWhenCommitFails(t *testing.T) {
	env := newTestEnv(t)
	u, ctx := env.seedUser(t, "planner-rollback@example.com")
	idea := testutil.SeedIdea(t, context.Background(), env.tx, u.ID, "Gear review", testNow)

	runner := &aggtest.InjectedTxRunner{
		Inner:         aggregates.NewGormTxRunner(env.tx),
		FailAfterBody: errors.New("commit lost"),
	}
	svc := env.plannerWithRunner(t, runner)

	_, err := svc.AssignIdea(ctx, AssignIdeaRequest{DayOfWeek: 3, IdeaID: testutil.PtrUUID(idea.ID)})
	if !domainagg.IsCode(err, domainagg.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if status, _, _ := response.Classify(err); status != http.StatusInternalServerError {
		t.Fatalf("classify status: want=500 got=%d", status)
	}
	if runner.BodyCalls != 1 || runner.RollbackCalls != 1 {
		t.Fatalf("runner counters body=%d rollback=%d", runner.BodyCalls, runner.RollbackCalls)
	}

	view, err := env.planner.ReadWeek(ctx, false)
	if err != nil {
		t.Fatalf("ReadWeek: %v", err)
	}
	if d := view.Days[3]; d.PlanID != nil || d.IdeaID != nil {
		t.Fatalf("rolled back assign is visible: %+v", d)
	}

	// The idea stays free for another day once storage recovers.
	if _, err := env.planner.AssignIdea(ctx, AssignIdeaRequest{DayOfWeek: 5, IdeaID: testutil.PtrUUID(idea.ID)}); err != nil {
		t.Fatalf("AssignIdea after rollback: %v", err)
	}
}
