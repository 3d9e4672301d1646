package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/creatorhub-backend/internal/data/repos/auth"
	"github.com/yungbote/creatorhub-backend/internal/data/repos/ideas"
	"github.com/yungbote/creatorhub-backend/internal/data/repos/planner"
	"github.com/yungbote/creatorhub-backend/internal/data/repos/usage"
	"github.com/yungbote/creatorhub-backend/internal/data/repos/user"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type UserTokenRepo = auth.UserTokenRepo

type IdeaRepo = ideas.IdeaRepo

type WeekPlanEntryRepo = planner.WeekPlanEntryRepo

type UsageCounterRepo = usage.UsageCounterRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return auth.NewUserTokenRepo(db, baseLog)
}

func NewIdeaRepo(db *gorm.DB, baseLog *logger.Logger) IdeaRepo { return ideas.NewIdeaRepo(db, baseLog) }

func NewWeekPlanEntryRepo(db *gorm.DB, baseLog *logger.Logger) WeekPlanEntryRepo {
	return planner.NewWeekPlanEntryRepo(db, baseLog)
}

func NewUsageCounterRepo(db *gorm.DB, baseLog *logger.Logger) UsageCounterRepo {
	return usage.NewUsageCounterRepo(db, baseLog)
}
