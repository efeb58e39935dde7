package model

// Learner is a registered profile. Usernames are unique at the storage
// layer; the application-level pre-check in the service is not transactional.
type Learner struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username        string `gorm:"size:80;not null;uniqueIndex" json:"username"`
	LearningGoals   string `gorm:"type:text" json:"learning_goals"`
	ExperienceLevel string `gorm:"size:50;default:beginner" json:"experience_level"`

	Sessions      []LearningSession `gorm:"foreignKey:LearnerID" json:"-"`
	KnowledgeGaps []KnowledgeGap    `gorm:"foreignKey:LearnerID" json:"-"`
}

func (Learner) TableName() string {
	return "learners"
}
