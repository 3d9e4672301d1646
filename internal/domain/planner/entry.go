package planner

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry is one user's plan for one day of one week.
// (user_id, week_start_date, day_of_week) is unique; so is (user_id, week_start_date, idea_id)
// for non-null idea_id, via a partial index created in migrations.
type Entry struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_week_plan_entry_slot,priority:1" json:"userId"`
	WeekStartDate string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_week_plan_entry_slot,priority:2" json:"weekStartDate"`
	DayOfWeek     int        `gorm:"not null;uniqueIndex:idx_week_plan_entry_slot,priority:3" json:"dayOfWeek"`
	IdeaID        *uuid.UUID `gorm:"type:uuid;index" json:"ideaId"`
	Note          string     `gorm:"not null;default:''" json:"note"`
	Status        Status     `gorm:"type:varchar(16);not null;default:'planned'" json:"status"`
	CreatedAt     time.Time  `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

func (Entry) TableName() string { return "week_plan_entry" }

func (e *Entry) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = StatusPlanned
	}
	return nil
}

// NewEntry builds an unsaved planned entry for a slot.
func NewEntry(userID uuid.UUID, week Week, day int, now time.Time) *Entry {
	return &Entry{
		ID:            uuid.New(),
		UserID:        userID,
		WeekStartDate: week.Key(),
		DayOfWeek:     day,
		Status:        StatusPlanned,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
