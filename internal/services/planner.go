package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/creatorhub-backend/internal/data/aggregates"
	"github.com/yungbote/creatorhub-backend/internal/data/repos"
	types "github.com/yungbote/creatorhub-backend/internal/domain"
	domainagg "github.com/yungbote/creatorhub-backend/internal/domain/aggregates"
	"github.com/yungbote/creatorhub-backend/internal/domain/planner"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

type AssignIdeaRequest struct {
	DayOfWeek int
	IdeaID    *uuid.UUID
	NextWeek  bool
}

type PlanStatusResult struct {
	DayOfWeek int            `json:"dayOfWeek"`
	Status    planner.Status `json:"status"`
}

type PlanNoteResult struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Note      string `json:"note"`
}

// PlannerService serves the weekly planner for the authenticated user.
// Reads go through table repos; writes go through the weekly plan aggregate.
type PlannerService interface {
	ReadWeek(ctx context.Context, nextWeek bool) (*planner.WeekView, error)
	AssignIdea(ctx context.Context, in AssignIdeaRequest) (*planner.DayView, error)
	UpdateStatus(ctx context.Context, nextWeek bool, dayOfWeek int, status string) (*PlanStatusResult, error)
	UpdateNote(ctx context.Context, nextWeek bool, dayOfWeek int, note string) (*PlanNoteResult, error)
}

type plannerService struct {
	log     *logger.Logger
	entries repos.WeekPlanEntryRepo
	ideas   repos.IdeaRepo
	plans   domainagg.WeeklyPlanAggregate
	clock   planner.Clock
}

func NewPlannerService(
	log *logger.Logger,
	entries repos.WeekPlanEntryRepo,
	ideaRepo repos.IdeaRepo,
	plans domainagg.WeeklyPlanAggregate,
	clock planner.Clock,
) PlannerService {
	if clock == nil {
		clock = planner.SystemClock
	}
	return &plannerService{
		log:     log.With("service", "PlannerService"),
		entries: entries,
		ideas:   ideaRepo,
		plans:   plans,
		clock:   clock,
	}
}

func (s *plannerService) ReadWeek(ctx context.Context, nextWeek bool) (*planner.WeekView, error) {
	const op = "Planner.ReadWeek"
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	week, err := resolveWeek(op, now, nextWeek)
	if err != nil {
		return nil, err
	}

	dbc := dbctx.Context{Ctx: ctx}
	entries, err := s.entries.ListByWeek(dbc, userID, week.Key())
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	var found []*types.Idea
	if ids := planner.IdeaIDs(entries); len(ids) > 0 {
		found, err = s.ideas.GetByIDs(dbc, userID, ids)
		if err != nil {
			return nil, aggregates.MapError(op, err)
		}
	}
	byID := make(map[uuid.UUID]*types.Idea, len(found))
	for _, i := range found {
		byID[i.ID] = i
	}

	view := planner.BuildWeekView(week, now, entries, byID)
	return &view, nil
}

func (s *plannerService) AssignIdea(ctx context.Context, in AssignIdeaRequest) (*planner.DayView, error) {
	const op = "Planner.AssignIdea"
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	week, err := resolveWeek(op, now, in.NextWeek)
	if err != nil {
		return nil, err
	}
	res, err := s.plans.AssignIdea(ctx, domainagg.AssignIdeaInput{
		SlotInput: domainagg.SlotInput{UserID: userID, Week: week, DayOfWeek: in.DayOfWeek, Now: now},
		IdeaID:    in.IdeaID,
	})
	if err != nil {
		return nil, err
	}
	view := planner.BuildDayView(week, in.DayOfWeek, now, res.Entry, res.Idea)
	return &view, nil
}

func (s *plannerService) UpdateStatus(ctx context.Context, nextWeek bool, dayOfWeek int, status string) (*PlanStatusResult, error) {
	const op = "Planner.UpdateStatus"
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	week, err := resolveWeek(op, now, nextWeek)
	if err != nil {
		return nil, err
	}
	parsed, _ := planner.ParseStatus(status)
	res, err := s.plans.UpdateStatus(ctx, domainagg.UpdatePlanStatusInput{
		SlotInput: domainagg.SlotInput{UserID: userID, Week: week, DayOfWeek: dayOfWeek, Now: now},
		Status:    parsed,
	})
	if err != nil {
		return nil, err
	}
	return &PlanStatusResult{DayOfWeek: res.DayOfWeek, Status: res.Status}, nil
}

func (s *plannerService) UpdateNote(ctx context.Context, nextWeek bool, dayOfWeek int, note string) (*PlanNoteResult, error) {
	const op = "Planner.UpdateNote"
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	week, err := resolveWeek(op, now, nextWeek)
	if err != nil {
		return nil, err
	}
	res, err := s.plans.UpdateNote(ctx, domainagg.UpdatePlanNoteInput{
		SlotInput: domainagg.SlotInput{UserID: userID, Week: week, DayOfWeek: dayOfWeek, Now: now},
		Note:      note,
	})
	if err != nil {
		return nil, err
	}
	if res.Created {
		s.log.Debug("Plan entry created from note", "user_id", userID, "week", week.Key(), "day_of_week", dayOfWeek)
	}
	return &PlanNoteResult{DayOfWeek: res.DayOfWeek, Note: res.Note}, nil
}

func resolveWeek(op string, now time.Time, nextWeek bool) (planner.Week, error) {
	week, err := planner.ResolveWeek(now, planner.OffsetFromNextWeek(nextWeek))
	if errors.Is(err, planner.ErrInvalidWeekOffset) {
		return planner.Week{}, domainagg.NewError(domainagg.CodeValidation, op, err.Error(), err)
	}
	return week, err
}
