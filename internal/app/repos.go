package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/creatorhub-backend/internal/data/repos"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

type Repos struct {
	User          repos.UserRepo
	UserToken     repos.UserTokenRepo
	Idea          repos.IdeaRepo
	WeekPlanEntry repos.WeekPlanEntryRepo
	UsageCounter  repos.UsageCounterRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:          repos.NewUserRepo(db, log),
		UserToken:     repos.NewUserTokenRepo(db, log),
		Idea:          repos.NewIdeaRepo(db, log),
		WeekPlanEntry: repos.NewWeekPlanEntryRepo(db, log),
		UsageCounter:  repos.NewUsageCounterRepo(db, log),
	}
}
