package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/creatorhub-backend/internal/domain"
)

// Migrate creates tables and the indexes AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := AutoMigrateAll(db); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if err := EnsurePlannerIndexes(db); err != nil {
		return err
	}
	return nil
}

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.Models()...)
}

// EnsurePlannerIndexes adds the partial unique index that keeps one idea on at most
// one day per week. The statement is valid on both Postgres and SQLite.
func EnsurePlannerIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_week_plan_entry_week_idea
		ON week_plan_entry (user_id, week_start_date, idea_id)
		WHERE idea_id IS NOT NULL;
	`).Error; err != nil {
		return fmt.Errorf("create idx_week_plan_entry_week_idea: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_week_plan_entry_user_week
		ON week_plan_entry (user_id, week_start_date);
	`).Error; err != nil {
		return fmt.Errorf("create idx_week_plan_entry_user_week: %w", err)
	}
	return nil
}
