package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/creatorhub-backend/internal/data/aggregates"
	aggtest "github.com/yungbote/creatorhub-backend/internal/data/aggregates/testutil"
	"github.com/yungbote/creatorhub-backend/internal/data/repos"
	"github.com/yungbote/creatorhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/creatorhub-backend/internal/domain"
	"github.com/yungbote/creatorhub-backend/internal/domain/usage"
	"github.com/yungbote/creatorhub-backend/internal/platform/ctxutil"
)

// Wednesday 2024-03-13.
var testNow = time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	tx      *gorm.DB
	ideas   repos.IdeaRepo
	entries repos.WeekPlanEntryRepo
	hooks   *aggtest.HooksRecorder

	auth    AuthService
	users   UserService
	usage   UsageService
	ideaSvc IdeaService
	planner PlannerService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	clock := func() time.Time { return testNow }

	userRepo := repos.NewUserRepo(tx, log)
	tokenRepo := repos.NewUserTokenRepo(tx, log)
	ideaRepo := repos.NewIdeaRepo(tx, log)
	entryRepo := repos.NewWeekPlanEntryRepo(tx, log)
	usageStore := NewSQLUsageStore(repos.NewUsageCounterRepo(tx, log), clock)

	hooks := &aggtest.HooksRecorder{}
	plans := aggregates.NewWeeklyPlanAggregate(aggregates.WeeklyPlanAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:       tx,
			Log:      log,
			Runner:   aggregates.NewGormTxRunner(tx),
			Hooks:    hooks,
			CASGuard: aggregates.NewCASGuard(tx),
		},
		Entries: entryRepo,
		Ideas:   ideaRepo,
	})

	return &testEnv{
		tx:      tx,
		ideas:   ideaRepo,
		entries: entryRepo,
		hooks:   hooks,
		auth: NewAuthService(tx, log, userRepo, tokenRepo, AuthConfig{
			JWTSecretKey: "test-secret",
			AccessTTL:    time.Hour,
			RefreshTTL:   24 * time.Hour,
			BcryptCost:   bcrypt.MinCost,
		}, clock),
		users:   NewUserService(log, userRepo, usageStore),
		usage:   NewUsageService(log, usageStore, usage.DefaultLimits(5, 10)),
		ideaSvc: NewIdeaService(log, ideaRepo, clock),
		planner: NewPlannerService(log, entryRepo, ideaRepo, plans, clock),
	}
}

// plannerWithRunner builds a planner whose aggregate writes go through runner.
func (e *testEnv) plannerWithRunner(t *testing.T, runner aggregates.TxRunner) PlannerService {
	t.Helper()
	log := testutil.Logger(t)
	plans := aggregates.NewWeeklyPlanAggregate(aggregates.WeeklyPlanAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:       e.tx,
			Log:      log,
			Runner:   runner,
			Hooks:    e.hooks,
			CASGuard: aggregates.NewCASGuard(e.tx),
		},
		Entries: e.entries,
		Ideas:   e.ideas,
	})
	return NewPlannerService(log, e.entries, e.ideas, plans, func() time.Time { return testNow })
}

func (e *testEnv) seedUser(t *testing.T, email string) (*types.User, context.Context) {
	t.Helper()
	u := testutil.SeedUser(t, context.Background(), e.tx, email)
	return u, asUser(u)
}

func asUser(u *types.User) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: u.ID})
}
