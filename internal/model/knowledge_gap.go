package model

import (
	"time"
)

// KnowledgeGap records a topic a learner struggles with. Nothing writes
// these yet; the read path stays in place for the planned gap-identification
// feature.
type KnowledgeGap struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LearnerID       uint      `gorm:"not null;index" json:"-"`
	Topic           string    `gorm:"size:200" json:"topic"`
	DifficultyLevel string    `gorm:"size:50" json:"difficulty_level"`
	IdentifiedAt    time.Time `gorm:"index;autoCreateTime" json:"identified_at"`
}

func (KnowledgeGap) TableName() string {
	return "knowledge_gaps"
}
