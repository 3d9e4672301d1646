package ideas

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ScriptGeneratedByManual = "manual"
	ScriptGeneratedByAI     = "ai"
)

type Script struct {
	Content       string     `json:"content"`
	GeneratedBy   string     `json:"generatedBy"`
	LastUpdatedAt *time.Time `json:"lastUpdatedAt,omitempty"`
}

// Idea is a short-form video concept owned by one user.
type Idea struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID                   `gorm:"type:uuid;not null;index:idx_idea_user_created,priority:1" json:"userId"`
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"not null;default:''" json:"description"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Hook        string                      `gorm:"not null;default:''" json:"hook"`
	Script      datatypes.JSONType[Script]  `json:"script"`
	CreatedAt   time.Time                   `gorm:"not null;index:idx_idea_user_created,priority:2,sort:desc" json:"createdAt"`
	UpdatedAt   time.Time                   `gorm:"not null" json:"updatedAt"`
}

func (Idea) TableName() string { return "idea" }

func (i *Idea) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Tags == nil {
		i.Tags = datatypes.JSONSlice[string]{}
	}
	return nil
}

// Summary is the slice of an idea embedded into plan day views.
type Summary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
}

func (i *Idea) Summary() *Summary {
	if i == nil {
		return nil
	}
	tags := []string(i.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &Summary{ID: i.ID, Title: i.Title, Description: i.Description, Tags: tags}
}

// NormalizeTags trims tags and drops empties.
func NormalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SplitTags parses a comma separated tag list.
func SplitTags(raw string) []string {
	return NormalizeTags(strings.Split(raw, ","))
}

func ValidGeneratedBy(v string) bool {
	return v == ScriptGeneratedByManual || v == ScriptGeneratedByAI
}
