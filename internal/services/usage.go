package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/yungbote/creatorhub-backend/internal/data/repos"
	"github.com/yungbote/creatorhub-backend/internal/domain/planner"
	"github.com/yungbote/creatorhub-backend/internal/domain/usage"
	"github.com/yungbote/creatorhub-backend/internal/observability"
	"github.com/yungbote/creatorhub-backend/internal/platform/apierr"
	"github.com/yungbote/creatorhub-backend/internal/platform/ctxutil"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

const CodeLimitReached = "LIMIT_REACHED"

// UsageStore persists per-user feature counters. IncrementCapped must be atomic.
type UsageStore interface {
	Counts(ctx context.Context, userID uuid.UUID) (map[usage.Feature]int, error)
	IncrementCapped(ctx context.Context, userID uuid.UUID, feature usage.Feature, limit int) (int, bool, error)
}

type sqlUsageStore struct {
	repo  repos.UsageCounterRepo
	clock planner.Clock
}

// NewSQLUsageStore keeps counters in the usage_counter table.
func NewSQLUsageStore(repo repos.UsageCounterRepo, clock planner.Clock) UsageStore {
	if clock == nil {
		clock = planner.SystemClock
	}
	return &sqlUsageStore{repo: repo, clock: clock}
}

func (s *sqlUsageStore) Counts(ctx context.Context, userID uuid.UUID) (map[usage.Feature]int, error) {
	rows, err := s.repo.ListByUser(dbctx.Context{Ctx: ctx}, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[usage.Feature]int, len(rows))
	for _, r := range rows {
		out[r.Feature] = r.Count
	}
	return out, nil
}

func (s *sqlUsageStore) IncrementCapped(ctx context.Context, userID uuid.UUID, feature usage.Feature, limit int) (int, bool, error) {
	return s.repo.IncrementCapped(dbctx.Context{Ctx: ctx}, userID, feature, limit, s.clock().UTC())
}

// UsageReport is the quota state of every feature for one user.
type UsageReport struct {
	Features []usage.FeatureUsage `json:"features"`
}

type UsageService interface {
	Report(ctx context.Context) (*UsageReport, error)
	Increment(ctx context.Context, feature usage.Feature) (*usage.FeatureUsage, error)
	// IncrementAI parses an AI feature name and increments it.
	IncrementAI(ctx context.Context, feature string) (*usage.FeatureUsage, error)
}

type usageService struct {
	log    *logger.Logger
	store  UsageStore
	limits usage.Limits
}

func NewUsageService(log *logger.Logger, store UsageStore, limits usage.Limits) UsageService {
	if limits == nil {
		limits = usage.DefaultLimits(5, 10)
	}
	return &usageService{log: log.With("service", "UsageService"), store: store, limits: limits}
}

func (us *usageService) Report(ctx context.Context) (*UsageReport, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := us.store.Counts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load usage counts: %w", err)
	}
	return &UsageReport{Features: usage.Report(counts, us.limits)}, nil
}

func (us *usageService) Increment(ctx context.Context, feature usage.Feature) (*usage.FeatureUsage, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	limit := us.limits.For(feature)
	count, ok, err := us.store.IncrementCapped(ctx, userID, feature, limit)
	if err != nil {
		return nil, fmt.Errorf("increment usage: %w", err)
	}
	if !ok {
		us.log.Info("Usage limit reached", "user_id", userID, "feature", string(feature))
		observability.Current().IncUsageLimitReached(string(feature))
		return nil, apierr.Newf(http.StatusForbidden, CodeLimitReached,
			"You have reached your limit of %d %s. Subscribe to unlock unlimited access.", limit, feature.Label())
	}
	rem := limit - count
	if rem < 0 {
		rem = 0
	}
	return &usage.FeatureUsage{Feature: feature, Count: count, Limit: limit, Remaining: rem}, nil
}

func (us *usageService) IncrementAI(ctx context.Context, feature string) (*usage.FeatureUsage, error) {
	f, ok := usage.ParseAIFeature(feature)
	if !ok {
		return nil, apierr.BadRequest("validation",
			`Invalid usage type. Must be "collaboration", "expansion", "hook", "script", or "script_refinement"`)
	}
	return us.Increment(ctx, f)
}

func requireUserID(ctx context.Context) (uuid.UUID, error) {
	userID := ctxutil.UserID(ctx)
	if userID == uuid.Nil {
		return uuid.Nil, errNotAuthorized
	}
	return userID, nil
}
