package usage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/creatorhub-backend/internal/domain"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

type UsageCounterRepo interface {
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.UsageCounter, error)
	// IncrementCapped adds one to the counter unless it already reached limit.
	// It returns the resulting count and whether the increment happened.
	IncrementCapped(dbc dbctx.Context, userID uuid.UUID, feature types.UsageFeature, limit int, now time.Time) (int, bool, error)
}

type usageCounterRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUsageCounterRepo(db *gorm.DB, baseLog *logger.Logger) UsageCounterRepo {
	repoLog := baseLog.With("repo", "UsageCounterRepo")
	return &usageCounterRepo{db: db, log: repoLog}
}

func (r *usageCounterRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.UsageCounter, error) {
	var results []*types.UsageCounter
	if userID == uuid.Nil {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *usageCounterRepo) IncrementCapped(dbc dbctx.Context, userID uuid.UUID, feature types.UsageFeature, limit int, now time.Time) (int, bool, error) {
	db := dbc.DB(r.db)

	seed := &types.UsageCounter{UserID: userID, Feature: feature, Count: 0, UpdatedAt: now}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "feature"}},
		DoNothing: true,
	}).Create(seed).Error; err != nil {
		return 0, false, err
	}

	res := db.Model(&types.UsageCounter{}).
		Where("user_id = ? AND feature = ? AND count < ?", userID, feature, limit).
		UpdateColumns(map[string]interface{}{
			"count":      gorm.Expr("count + 1"),
			"updated_at": now,
		})
	if res.Error != nil {
		return 0, false, res.Error
	}

	var row types.UsageCounter
	if err := db.Where("user_id = ? AND feature = ?", userID, feature).
		Take(&row).Error; err != nil {
		return 0, false, err
	}
	if res.RowsAffected == 0 {
		r.log.Debug("Usage limit reached", "user_id", userID, "feature", string(feature), "count", row.Count)
	}
	return row.Count, res.RowsAffected > 0, nil
}
