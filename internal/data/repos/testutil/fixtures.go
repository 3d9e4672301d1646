package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/creatorhub-backend/internal/domain"
	"github.com/yungbote/creatorhub-backend/internal/domain/planner"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	now := time.Now().UTC()
	u := &types.User{
		ID:        uuid.New(),
		Name:      "Test Creator",
		Email:     email,
		Password:  "pw",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedIdea(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, title string, createdAt time.Time) *types.Idea {
	tb.Helper()
	i := &types.Idea{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: title + " description",
		Tags:        datatypes.JSONSlice[string]{"test"},
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if err := tx.WithContext(ctx).Create(i).Error; err != nil {
		tb.Fatalf("seed idea: %v", err)
	}
	return i
}

func SeedPlanEntry(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, week planner.Week, day int, ideaID *uuid.UUID, status planner.Status, now time.Time) *types.WeekPlanEntry {
	tb.Helper()
	e := planner.NewEntry(userID, week, day, now)
	e.IdeaID = ideaID
	if status != "" {
		e.Status = status
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed plan entry: %v", err)
	}
	return e
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }

func PtrTime(v time.Time) *time.Time { return &v }
