package aggregates

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/creatorhub-backend/internal/domain/ideas"
	"github.com/yungbote/creatorhub-backend/internal/domain/planner"
)

var WeeklyPlanAggregateContract = Contract{
	Name:             "Planner.WeeklyPlanAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyTableRepoQueries,
	Notes: "Owns one entry per (user, week, day), one day per idea per week, and the past-day " +
		"write guard. Week views are read from table repos.",
}

// WeeklyPlanAggregate owns weekly plan slot invariants.
//
// Write method failures return *aggregates.Error with codes:
// CodeValidation, CodePastDate, CodeNotFound, CodeConflict, CodeRetryable, CodeInternal.
type WeeklyPlanAggregate interface {
	Aggregate

	// AssignIdea sets or clears the idea of a slot, creating the slot on first write.
	AssignIdea(ctx context.Context, in AssignIdeaInput) (AssignIdeaResult, error)

	// UpdateStatus changes the status of an existing slot.
	UpdateStatus(ctx context.Context, in UpdatePlanStatusInput) (UpdatePlanStatusResult, error)

	// UpdateNote sets the note of a slot, creating the slot on first write.
	UpdateNote(ctx context.Context, in UpdatePlanNoteInput) (UpdatePlanNoteResult, error)
}

// SlotInput identifies one (user, week, day) slot and the instant the request is evaluated at.
type SlotInput struct {
	UserID    uuid.UUID
	Week      planner.Week
	DayOfWeek int
	Now       time.Time
}

type AssignIdeaInput struct {
	SlotInput
	IdeaID *uuid.UUID
}

type AssignIdeaResult struct {
	Entry   *planner.Entry
	Idea    *ideas.Idea
	Created bool
}

type UpdatePlanStatusInput struct {
	SlotInput
	Status planner.Status
}

type UpdatePlanStatusResult struct {
	DayOfWeek int
	Status    planner.Status
	UpdatedAt time.Time
}

type UpdatePlanNoteInput struct {
	SlotInput
	Note string
}

type UpdatePlanNoteResult struct {
	DayOfWeek int
	Note      string
	Created   bool
	UpdatedAt time.Time
}
