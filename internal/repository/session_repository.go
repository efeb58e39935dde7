package repository

import (
	"learnsphere_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.LearningSession) error {
	return r.DB.Create(session).Error
}

// FindByLearner returns the learner's sessions in insertion order. The
// ordering is stable but not part of the API contract.
func (r *SessionRepository) FindByLearner(learnerID uint) ([]model.LearningSession, error) {
	var sessions []model.LearningSession
	err := r.DB.Where("learner_id = ?", learnerID).Order("id ASC").Find(&sessions).Error
	return sessions, err
}
