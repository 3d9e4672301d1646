package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/creatorhub-backend/internal/data/repos"
	types "github.com/yungbote/creatorhub-backend/internal/domain"
	"github.com/yungbote/creatorhub-backend/internal/domain/ideas"
	"github.com/yungbote/creatorhub-backend/internal/domain/planner"
	"github.com/yungbote/creatorhub-backend/internal/platform/apierr"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

const (
	defaultIdeaPageSize = 10
	maxIdeaPageSize     = 100
)

var errIdeaNotFound = apierr.NotFound("not_found", "Idea not found")

type CreateIdeaInput struct {
	Title       string
	Description string
	Tags        []string
	Hook        string
}

// ScriptPatch updates an idea's script. Nil fields are left alone.
type ScriptPatch struct {
	Content     *string
	GeneratedBy *string
}

// UpdateIdeaInput is a partial update. Nil fields are left alone.
type UpdateIdeaInput struct {
	Title       *string
	Description *string
	Tags        *[]string
	Hook        *string
	Script      *ScriptPatch
}

type IdeaPage struct {
	Count   int           `json:"count"`
	Total   int64         `json:"total"`
	HasMore bool          `json:"hasMore"`
	Data    []*types.Idea `json:"data"`
}

type IdeaService interface {
	List(ctx context.Context, limit, skip int) (*IdeaPage, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Idea, error)
	Create(ctx context.Context, in CreateIdeaInput) (*types.Idea, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateIdeaInput) (*types.Idea, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ideaService struct {
	log      *logger.Logger
	ideaRepo repos.IdeaRepo
	clock    planner.Clock
}

func NewIdeaService(log *logger.Logger, ideaRepo repos.IdeaRepo, clock planner.Clock) IdeaService {
	if clock == nil {
		clock = planner.SystemClock
	}
	return &ideaService{log: log.With("service", "IdeaService"), ideaRepo: ideaRepo, clock: clock}
}

func (s *ideaService) List(ctx context.Context, limit, skip int) (*IdeaPage, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultIdeaPageSize
	}
	if limit > maxIdeaPageSize {
		limit = maxIdeaPageSize
	}
	if skip < 0 {
		skip = 0
	}
	dbc := dbctx.Context{Ctx: ctx}
	rows, err := s.ideaRepo.ListByUser(dbc, userID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	total, err := s.ideaRepo.CountByUser(dbc, userID)
	if err != nil {
		return nil, fmt.Errorf("count ideas: %w", err)
	}
	if rows == nil {
		rows = []*types.Idea{}
	}
	return &IdeaPage{
		Count:   len(rows),
		Total:   total,
		HasMore: int64(skip+len(rows)) < total,
		Data:    rows,
	}, nil
}

func (s *ideaService) Get(ctx context.Context, id uuid.UUID) (*types.Idea, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	idea, err := s.ideaRepo.GetByID(dbctx.Context{Ctx: ctx}, userID, id)
	if err != nil {
		return nil, fmt.Errorf("load idea: %w", err)
	}
	if idea == nil {
		return nil, errIdeaNotFound
	}
	return idea, nil
}

func (s *ideaService) Create(ctx context.Context, in CreateIdeaInput) (*types.Idea, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apierr.BadRequest("validation", "Please provide a title")
	}
	now := s.clock().UTC()
	idea := &types.Idea{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Tags:        datatypes.JSONSlice[string](ideas.NormalizeTags(in.Tags)),
		Hook:        strings.TrimSpace(in.Hook),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.ideaRepo.Create(dbctx.Context{Ctx: ctx}, []*types.Idea{idea}); err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}
	return idea, nil
}

func (s *ideaService) Update(ctx context.Context, id uuid.UUID, in UpdateIdeaInput) (*types.Idea, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	dbc := dbctx.Context{Ctx: ctx}
	idea, err := s.ideaRepo.GetByID(dbc, userID, id)
	if err != nil {
		return nil, fmt.Errorf("load idea: %w", err)
	}
	if idea == nil {
		return nil, errIdeaNotFound
	}

	now := s.clock().UTC()
	updates := map[string]interface{}{"updated_at": now}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apierr.BadRequest("validation", "Title cannot be empty")
		}
		updates["title"] = title
		idea.Title = title
	}
	if in.Description != nil {
		idea.Description = strings.TrimSpace(*in.Description)
		updates["description"] = idea.Description
	}
	if in.Tags != nil {
		idea.Tags = datatypes.JSONSlice[string](ideas.NormalizeTags(*in.Tags))
		updates["tags"] = idea.Tags
	}
	if in.Hook != nil {
		idea.Hook = strings.TrimSpace(*in.Hook)
		updates["hook"] = idea.Hook
	}
	if in.Script != nil {
		script := idea.Script.Data()
		if in.Script.Content != nil {
			script.Content = strings.TrimSpace(*in.Script.Content)
		}
		if in.Script.GeneratedBy != nil && ideas.ValidGeneratedBy(*in.Script.GeneratedBy) {
			script.GeneratedBy = *in.Script.GeneratedBy
		}
		script.LastUpdatedAt = &now
		idea.Script = datatypes.NewJSONType(script)
		updates["script"] = idea.Script
	}

	n, err := s.ideaRepo.UpdateFields(dbc, userID, id, updates)
	if err != nil {
		return nil, fmt.Errorf("update idea: %w", err)
	}
	if n == 0 {
		return nil, errIdeaNotFound
	}
	idea.UpdatedAt = now
	return idea, nil
}

func (s *ideaService) Delete(ctx context.Context, id uuid.UUID) error {
	userID, err := requireUserID(ctx)
	if err != nil {
		return err
	}
	n, err := s.ideaRepo.Delete(dbctx.Context{Ctx: ctx}, userID, id)
	if err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}
	if n == 0 {
		return errIdeaNotFound
	}
	s.log.Debug("Idea deleted", "user_id", userID, "idea_id", id)
	return nil
}
