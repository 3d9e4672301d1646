package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/creatorhub-backend/internal/data/repos"
	"github.com/yungbote/creatorhub-backend/internal/domain/usage"
	"github.com/yungbote/creatorhub-backend/internal/platform/apierr"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

// Me is the current user as returned by /api/auth/me.
type Me struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	RandomIdeaCount int       `json:"randomIdeaCount"`
}

type UserService interface {
	GetMe(ctx context.Context) (*Me, error)
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
	usage    UsageStore
}

func NewUserService(log *logger.Logger, userRepo repos.UserRepo, usageStore UsageStore) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{log: serviceLog, userRepo: userRepo, usage: usageStore}
}

func (us *userService) GetMe(ctx context.Context) (*Me, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	users, err := us.userRepo.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 {
		us.log.Warn("Authenticated user no longer exists", "user_id", userID)
		return nil, apierr.NotFound("not_found", "User not found")
	}
	counts, err := us.usage.Counts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load usage counts: %w", err)
	}
	u := users[0]
	return &Me{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		RandomIdeaCount: counts[usage.FeatureRandomIdea],
	}, nil
}
