package planner

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/creatorhub-backend/internal/domain"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

// WeekPlanEntryRepo reads and writes per-day plan rows keyed by
// (user_id, week_start_date, day_of_week).
type WeekPlanEntryRepo interface {
	ListByWeek(dbc dbctx.Context, userID uuid.UUID, weekKey string) ([]*types.WeekPlanEntry, error)
	GetByDay(dbc dbctx.Context, userID uuid.UUID, weekKey string, day int) (*types.WeekPlanEntry, error)
	GetByIdea(dbc dbctx.Context, userID uuid.UUID, weekKey string, ideaID uuid.UUID) ([]*types.WeekPlanEntry, error)
	CreateIfAbsent(dbc dbctx.Context, entry *types.WeekPlanEntry) (bool, error)
}

type weekPlanEntryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWeekPlanEntryRepo(db *gorm.DB, baseLog *logger.Logger) WeekPlanEntryRepo {
	repoLog := baseLog.With("repo", "WeekPlanEntryRepo")
	return &weekPlanEntryRepo{db: db, log: repoLog}
}

// ListByWeek returns the stored entries of a week ordered by day.
func (r *weekPlanEntryRepo) ListByWeek(dbc dbctx.Context, userID uuid.UUID, weekKey string) ([]*types.WeekPlanEntry, error) {
	var results []*types.WeekPlanEntry
	if userID == uuid.Nil || weekKey == "" {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Where("user_id = ? AND week_start_date = ?", userID, weekKey).
		Order("day_of_week ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByDay returns nil, nil when the slot has no entry.
func (r *weekPlanEntryRepo) GetByDay(dbc dbctx.Context, userID uuid.UUID, weekKey string, day int) (*types.WeekPlanEntry, error) {
	var rows []*types.WeekPlanEntry
	if err := dbc.DB(r.db).
		Where("user_id = ? AND week_start_date = ? AND day_of_week = ?", userID, weekKey, day).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *weekPlanEntryRepo) GetByIdea(dbc dbctx.Context, userID uuid.UUID, weekKey string, ideaID uuid.UUID) ([]*types.WeekPlanEntry, error) {
	var results []*types.WeekPlanEntry
	if ideaID == uuid.Nil {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Where("user_id = ? AND week_start_date = ? AND idea_id = ?", userID, weekKey, ideaID).
		Order("day_of_week ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// CreateIfAbsent inserts the entry unless its slot is already taken.
// It reports false when another writer holds the slot.
func (r *weekPlanEntryRepo) CreateIfAbsent(dbc dbctx.Context, entry *types.WeekPlanEntry) (bool, error) {
	if entry == nil {
		return false, nil
	}
	res := dbc.DB(r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "week_start_date"},
				{Name: "day_of_week"},
			},
			DoNothing: true,
		}).
		Create(entry)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
