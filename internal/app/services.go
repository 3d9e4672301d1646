package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/creatorhub-backend/internal/clients/redis"
	"github.com/yungbote/creatorhub-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/creatorhub-backend/internal/domain/aggregates"
	"github.com/yungbote/creatorhub-backend/internal/domain/planner"
	"github.com/yungbote/creatorhub-backend/internal/domain/usage"
	"github.com/yungbote/creatorhub-backend/internal/observability"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
	"github.com/yungbote/creatorhub-backend/internal/services"
)

const usageKeyPrefix = "creatorhub:usage"

type Services struct {
	Auth    services.AuthService
	User    services.UserService
	Usage   services.UsageService
	Idea    services.IdeaService
	Planner services.PlannerService

	WeeklyPlans domainagg.WeeklyPlanAggregate
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	clock := planner.SystemClock

	var usageStore services.UsageStore
	if clients.Redis != nil {
		log.Info("Usage counters backed by redis")
		usageStore = redis.NewUsageCounters(clients.Redis, log, usageKeyPrefix)
	} else {
		usageStore = services.NewSQLUsageStore(repos.UsageCounter, clock)
	}

	weeklyPlans := aggregates.NewWeeklyPlanAggregate(aggregates.WeeklyPlanAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:       db,
			Log:      log,
			Runner:   aggregates.NewGormTxRunner(db),
			Hooks:    aggregates.NewObservabilityHooks(metrics),
			CASGuard: aggregates.NewCASGuard(db),
		},
		Entries: repos.WeekPlanEntry,
		Ideas:   repos.Idea,
	})

	authService := services.NewAuthService(db, log, repos.User, repos.UserToken, services.AuthConfig{
		JWTSecretKey: cfg.JWTSecretKey,
		AccessTTL:    cfg.AccessTokenTTL,
		RefreshTTL:   cfg.RefreshTokenTTL,
	}, clock)

	return Services{
		Auth:        authService,
		User:        services.NewUserService(log, repos.User, usageStore),
		Usage:       services.NewUsageService(log, usageStore, usage.DefaultLimits(cfg.Usage.DefaultLimit, cfg.Usage.ScriptRefinementLimit)),
		Idea:        services.NewIdeaService(log, repos.Idea, clock),
		Planner:     services.NewPlannerService(log, repos.WeekPlanEntry, repos.Idea, weeklyPlans, clock),
		WeeklyPlans: weeklyPlans,
	}
}
