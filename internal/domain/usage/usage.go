// Package usage defines per-user feature quotas.
package usage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feature string

const (
	FeatureRandomIdea       Feature = "random_idea"
	FeatureCollaboration    Feature = "collaboration"
	FeatureExpansion        Feature = "expansion"
	FeatureHook             Feature = "hook"
	FeatureScript           Feature = "script"
	FeatureScriptRefinement Feature = "script_refinement"
)

// AllFeatures lists features in display order.
var AllFeatures = []Feature{
	FeatureRandomIdea,
	FeatureCollaboration,
	FeatureExpansion,
	FeatureHook,
	FeatureScript,
	FeatureScriptRefinement,
}

// AIFeatures are the features accepted by the AI usage endpoint.
var AIFeatures = []Feature{
	FeatureCollaboration,
	FeatureExpansion,
	FeatureHook,
	FeatureScript,
	FeatureScriptRefinement,
}

func ParseAIFeature(raw string) (Feature, bool) {
	for _, f := range AIFeatures {
		if string(f) == raw {
			return f, true
		}
	}
	return "", false
}

// Limits caps each feature's counter.
type Limits map[Feature]int

func DefaultLimits(base, refinement int) Limits {
	l := Limits{}
	for _, f := range AllFeatures {
		l[f] = base
	}
	l[FeatureScriptRefinement] = refinement
	return l
}

func (l Limits) For(f Feature) int { return l[f] }

// Counter is a persisted usage count for one (user, feature).
type Counter struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_usage_counter_user_feature,priority:1" json:"userId"`
	Feature   Feature   `gorm:"type:varchar(32);not null;uniqueIndex:idx_usage_counter_user_feature,priority:2" json:"feature"`
	Count     int       `gorm:"not null;default:0" json:"count"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Counter) TableName() string { return "usage_counter" }

func (c *Counter) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// FeatureUsage is one row of a usage report.
type FeatureUsage struct {
	Feature   Feature `json:"feature"`
	Count     int     `json:"count"`
	Limit     int     `json:"limit"`
	Remaining int     `json:"remaining"`
}

// Report builds a usage report in AllFeatures order.
func Report(counts map[Feature]int, limits Limits) []FeatureUsage {
	out := make([]FeatureUsage, 0, len(AllFeatures))
	for _, f := range AllFeatures {
		c, lim := counts[f], limits.For(f)
		rem := lim - c
		if rem < 0 {
			rem = 0
		}
		out = append(out, FeatureUsage{Feature: f, Count: c, Limit: lim, Remaining: rem})
	}
	return out
}

var featureLabels = map[Feature]string{
	FeatureRandomIdea:       "Random Ideas",
	FeatureCollaboration:    "Collaboration Messages",
	FeatureExpansion:        "Idea Expansions",
	FeatureHook:             "Hook Generations",
	FeatureScript:           "Script Generations",
	FeatureScriptRefinement: "Script Refinements",
}

// Label is the plural display name used in limit messages.
func (f Feature) Label() string {
	if l, ok := featureLabels[f]; ok {
		return l
	}
	return string(f)
}
