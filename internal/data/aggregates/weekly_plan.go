package aggregates

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/creatorhub-backend/internal/data/repos"
	types "github.com/yungbote/creatorhub-backend/internal/domain"
	domainagg "github.com/yungbote/creatorhub-backend/internal/domain/aggregates"
	"github.com/yungbote/creatorhub-backend/internal/domain/planner"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
)

const (
	msgDayOutOfRange   = "dayOfWeek must be between 0 (Monday) and 6 (Sunday)"
	msgInvalidStatus   = "Status must be one of: planned, posted, skipped"
	msgAssignPast      = "Cannot assign ideas to past days"
	msgStatusPast      = "Cannot update status of past days"
	msgNotePast        = "Cannot update notes for past days"
	msgIdeaNotFound    = "Idea not found"
	msgPlanNotFound    = "No plan found for this day"
	msgIdeaTaken       = "This idea is already assigned to another day this week"
	msgSlotTaken       = "This day already has a plan. Please update it instead."
	msgEntryChanged    = "This day's plan changed while saving. Please try again."
	weekPlanEntryTable = "week_plan_entry"
)

type WeeklyPlanAggregateDeps struct {
	Base BaseDeps

	Entries repos.WeekPlanEntryRepo
	Ideas   repos.IdeaRepo
}

type weeklyPlanAggregate struct {
	deps WeeklyPlanAggregateDeps
}

func NewWeeklyPlanAggregate(deps WeeklyPlanAggregateDeps) domainagg.WeeklyPlanAggregate {
	deps.Base = deps.Base.withDefaults()
	return &weeklyPlanAggregate{deps: deps}
}

func (a *weeklyPlanAggregate) Contract() domainagg.Contract {
	return domainagg.WeeklyPlanAggregateContract
}

func (a *weeklyPlanAggregate) AssignIdea(ctx context.Context, in domainagg.AssignIdeaInput) (domainagg.AssignIdeaResult, error) {
	const op = "Planner.WeeklyPlan.AssignIdea"
	var out domainagg.AssignIdeaResult
	now, err := a.checkSlot(op, in.SlotInput, msgAssignPast)
	if err != nil {
		return out, err
	}
	if in.IdeaID != nil && *in.IdeaID == uuid.Nil {
		return out, domainagg.NewError(domainagg.CodeValidation, op, "Invalid ideaId", nil)
	}
	weekKey := in.Week.Key()

	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		var idea *types.Idea
		if in.IdeaID != nil {
			found, err := a.deps.Ideas.GetByID(dbc, in.UserID, *in.IdeaID)
			if err != nil {
				return err
			}
			if found == nil {
				return NotFoundError(msgIdeaNotFound)
			}
			idea = found

			holders, err := a.deps.Entries.GetByIdea(dbc, in.UserID, weekKey, *in.IdeaID)
			if err != nil {
				return err
			}
			for _, h := range holders {
				if h.DayOfWeek != in.DayOfWeek {
					return ConflictError(msgIdeaTaken)
				}
			}
		}

		entry, err := a.deps.Entries.GetByDay(dbc, in.UserID, weekKey, in.DayOfWeek)
		if err != nil {
			return err
		}

		if entry == nil {
			entry = planner.NewEntry(in.UserID, in.Week, in.DayOfWeek, now)
			entry.IdeaID = copyUUIDPtr(in.IdeaID)
			created, err := a.deps.Entries.CreateIfAbsent(dbc, entry)
			if err != nil {
				if IsUniqueViolation(err) {
					return ConflictError(msgIdeaTaken)
				}
				return err
			}
			if !created {
				return a.slotTaken(dbc, op, in.SlotInput, weekKey)
			}
			out.Created = true
		} else {
			updates := map[string]any{"updated_at": now}
			if in.IdeaID == nil {
				updates["idea_id"] = nil
				updates["status"] = planner.StatusPlanned
			} else {
				updates["idea_id"] = *in.IdeaID
			}
			ok, err := a.deps.Base.CASGuard.UpdateOwned(dbc, weekPlanEntryTable, entry.ID, in.UserID, updates)
			if err != nil {
				if IsUniqueViolation(err) {
					return ConflictError(msgIdeaTaken)
				}
				return err
			}
			if err := RequireCASSuccess(ok, msgEntryChanged); err != nil {
				return err
			}
			entry.IdeaID = copyUUIDPtr(in.IdeaID)
			if in.IdeaID == nil {
				entry.Status = planner.StatusPlanned
			}
			entry.UpdatedAt = now
		}

		out.Entry = entry
		out.Idea = idea
		return nil
	})
	if err != nil {
		return domainagg.AssignIdeaResult{}, err
	}
	return out, nil
}

func (a *weeklyPlanAggregate) UpdateStatus(ctx context.Context, in domainagg.UpdatePlanStatusInput) (domainagg.UpdatePlanStatusResult, error) {
	const op = "Planner.WeeklyPlan.UpdateStatus"
	var out domainagg.UpdatePlanStatusResult
	if !in.Status.Valid() {
		return out, domainagg.NewError(domainagg.CodeValidation, op, msgInvalidStatus, nil)
	}
	now, err := a.checkSlot(op, in.SlotInput, msgStatusPast)
	if err != nil {
		return out, err
	}
	weekKey := in.Week.Key()

	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		entry, err := a.deps.Entries.GetByDay(dbc, in.UserID, weekKey, in.DayOfWeek)
		if err != nil {
			return err
		}
		if entry == nil {
			return NotFoundError(msgPlanNotFound)
		}
		ok, err := a.deps.Base.CASGuard.UpdateOwned(dbc, weekPlanEntryTable, entry.ID, in.UserID, map[string]any{
			"status":     in.Status,
			"updated_at": now,
		})
		if err != nil {
			return err
		}
		if err := RequireCASSuccess(ok, msgEntryChanged); err != nil {
			return err
		}
		out = domainagg.UpdatePlanStatusResult{DayOfWeek: in.DayOfWeek, Status: in.Status, UpdatedAt: now}
		return nil
	})
	if err != nil {
		return domainagg.UpdatePlanStatusResult{}, err
	}
	return out, nil
}

func (a *weeklyPlanAggregate) UpdateNote(ctx context.Context, in domainagg.UpdatePlanNoteInput) (domainagg.UpdatePlanNoteResult, error) {
	const op = "Planner.WeeklyPlan.UpdateNote"
	var out domainagg.UpdatePlanNoteResult
	now, err := a.checkSlot(op, in.SlotInput, msgNotePast)
	if err != nil {
		return out, err
	}
	note := strings.TrimSpace(in.Note)
	weekKey := in.Week.Key()

	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		entry, err := a.deps.Entries.GetByDay(dbc, in.UserID, weekKey, in.DayOfWeek)
		if err != nil {
			return err
		}
		if entry == nil {
			entry = planner.NewEntry(in.UserID, in.Week, in.DayOfWeek, now)
			entry.Note = note
			created, err := a.deps.Entries.CreateIfAbsent(dbc, entry)
			if err != nil {
				return err
			}
			if !created {
				return a.slotTaken(dbc, op, in.SlotInput, weekKey)
			}
			out.Created = true
		} else {
			ok, err := a.deps.Base.CASGuard.UpdateOwned(dbc, weekPlanEntryTable, entry.ID, in.UserID, map[string]any{
				"note":       note,
				"updated_at": now,
			})
			if err != nil {
				return err
			}
			if err := RequireCASSuccess(ok, msgEntryChanged); err != nil {
				return err
			}
		}
		out.DayOfWeek = in.DayOfWeek
		out.Note = note
		out.UpdatedAt = now
		return nil
	})
	if err != nil {
		return domainagg.UpdatePlanNoteResult{}, err
	}
	return out, nil
}

// checkSlot validates the slot and rejects writes to elapsed days. It returns the
// evaluation instant.
func (a *weeklyPlanAggregate) checkSlot(op string, in domainagg.SlotInput, pastMsg string) (time.Time, error) {
	if in.UserID == uuid.Nil {
		return time.Time{}, domainagg.NewError(domainagg.CodeValidation, op, "missing user_id", nil)
	}
	if !planner.ValidDay(in.DayOfWeek) {
		return time.Time{}, domainagg.NewError(domainagg.CodeValidation, op, msgDayOutOfRange, nil)
	}
	if in.Week.Start.IsZero() {
		return time.Time{}, domainagg.NewError(domainagg.CodeValidation, op, "missing week", nil)
	}
	if a.deps.Entries == nil || a.deps.Ideas == nil {
		return time.Time{}, domainagg.NewError(domainagg.CodeInternal, op, "weekly plan aggregate repos not configured", nil)
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	if planner.IsPast(in.Week.DayDate(in.DayOfWeek), now) {
		return time.Time{}, domainagg.NewError(domainagg.CodePastDate, op, pastMsg, nil)
	}
	return now, nil
}

// slotTaken re-reads a slot another writer created first and reports the conflict.
func (a *weeklyPlanAggregate) slotTaken(dbc dbctx.Context, op string, in domainagg.SlotInput, weekKey string) error {
	winner, err := a.deps.Entries.GetByDay(dbc, in.UserID, weekKey, in.DayOfWeek)
	if err != nil {
		return err
	}
	if a.deps.Base.Log != nil && winner != nil {
		a.deps.Base.Log.Debug("Plan slot created concurrently",
			"op", op,
			"user_id", in.UserID,
			"week", weekKey,
			"day_of_week", in.DayOfWeek,
			"plan_id", winner.ID,
		)
	}
	return ConflictError(msgSlotTaken)
}

func copyUUIDPtr(in *uuid.UUID) *uuid.UUID {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
