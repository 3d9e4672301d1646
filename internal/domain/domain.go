// Package domain re-exports the persisted models so data-layer code can refer to
// them through one import.
package domain

import (
	"github.com/yungbote/creatorhub-backend/internal/domain/auth"
	"github.com/yungbote/creatorhub-backend/internal/domain/ideas"
	"github.com/yungbote/creatorhub-backend/internal/domain/planner"
	"github.com/yungbote/creatorhub-backend/internal/domain/usage"
	"github.com/yungbote/creatorhub-backend/internal/domain/user"
)

type User = user.User
type UserToken = auth.UserToken

type Idea = ideas.Idea
type IdeaScript = ideas.Script
type IdeaSummary = ideas.Summary

type WeekPlanEntry = planner.Entry
type PlanStatus = planner.Status

type UsageCounter = usage.Counter
type UsageFeature = usage.Feature

// Models lists every table owned by the service, in migration order.
func Models() []any {
	return []any{
		&User{},
		&UserToken{},
		&Idea{},
		&WeekPlanEntry{},
		&UsageCounter{},
	}
}
