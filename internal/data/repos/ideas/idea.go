package ideas

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/creatorhub-backend/internal/domain"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

// IdeaRepo reads and writes ideas. Every lookup is scoped to the owning user.
type IdeaRepo interface {
	Create(dbc dbctx.Context, ideas []*types.Idea) ([]*types.Idea, error)
	GetByID(dbc dbctx.Context, userID, ideaID uuid.UUID) (*types.Idea, error)
	GetByIDs(dbc dbctx.Context, userID uuid.UUID, ideaIDs []uuid.UUID) ([]*types.Idea, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit, skip int) ([]*types.Idea, error)
	CountByUser(dbc dbctx.Context, userID uuid.UUID) (int64, error)
	UpdateFields(dbc dbctx.Context, userID, ideaID uuid.UUID, updates map[string]interface{}) (int64, error)
	Delete(dbc dbctx.Context, userID, ideaID uuid.UUID) (int64, error)
}

type ideaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIdeaRepo(db *gorm.DB, baseLog *logger.Logger) IdeaRepo {
	repoLog := baseLog.With("repo", "IdeaRepo")
	return &ideaRepo{db: db, log: repoLog}
}

func (r *ideaRepo) Create(dbc dbctx.Context, ideas []*types.Idea) ([]*types.Idea, error) {
	if len(ideas) == 0 {
		return []*types.Idea{}, nil
	}
	if err := dbc.DB(r.db).Create(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

// GetByID returns nil, nil when the idea does not exist or belongs to someone else.
func (r *ideaRepo) GetByID(dbc dbctx.Context, userID, ideaID uuid.UUID) (*types.Idea, error) {
	if userID == uuid.Nil || ideaID == uuid.Nil {
		return nil, nil
	}
	var rows []*types.Idea
	if err := dbc.DB(r.db).
		Where("id = ? AND user_id = ?", ideaID, userID).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *ideaRepo) GetByIDs(dbc dbctx.Context, userID uuid.UUID, ideaIDs []uuid.UUID) ([]*types.Idea, error) {
	var results []*types.Idea
	if userID == uuid.Nil || len(ideaIDs) == 0 {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Where("user_id = ? AND id IN ?", userID, ideaIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListByUser returns ideas newest first.
func (r *ideaRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit, skip int) ([]*types.Idea, error) {
	var results []*types.Idea
	if userID == uuid.Nil {
		return results, nil
	}
	q := dbc.DB(r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if skip > 0 {
		q = q.Offset(skip)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ideaRepo) CountByUser(dbc dbctx.Context, userID uuid.UUID) (int64, error) {
	var n int64
	if err := dbc.DB(r.db).
		Model(&types.Idea{}).
		Where("user_id = ?", userID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// UpdateFields applies a column map to an owned idea and bumps updated_at.
// The returned count is zero when the idea is missing or foreign.
func (r *ideaRepo) UpdateFields(dbc dbctx.Context, userID, ideaID uuid.UUID, updates map[string]interface{}) (int64, error) {
	if userID == uuid.Nil || ideaID == uuid.Nil {
		return 0, nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now().UTC()
	}
	res := dbc.DB(r.db).
		Model(&types.Idea{}).
		Where("id = ? AND user_id = ?", ideaID, userID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *ideaRepo) Delete(dbc dbctx.Context, userID, ideaID uuid.UUID) (int64, error) {
	res := dbc.DB(r.db).
		Where("id = ? AND user_id = ?", ideaID, userID).
		Delete(&types.Idea{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
