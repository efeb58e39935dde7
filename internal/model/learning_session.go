package model

import (
	"time"
)

// LearningSession is one unit of generated lesson content. Rows are written
// once and never updated; progress is stored for the front-end but no
// endpoint mutates it.
type LearningSession struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LearnerID uint      `gorm:"not null;index" json:"-"`
	Topic     string    `gorm:"size:200" json:"topic"`
	Content   string    `gorm:"type:text" json:"content"`
	Progress  float64   `gorm:"default:0" json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}

func (LearningSession) TableName() string {
	return "learning_sessions"
}
