package service

import (
	"errors"

	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/util"
	"learnsphere_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LearnerService struct {
	learners *repository.LearnerRepository
}

func NewLearnerService(learners *repository.LearnerRepository) *LearnerService {
	return &LearnerService{learners: learners}
}

// Register creates a learner after an application-level uniqueness check.
// The check and the insert are not one transaction; two concurrent
// registrations can both pass the check, and the unique index on username
// then rejects the loser at the storage layer.
func (s *LearnerService) Register(username, goals, level string) (*model.Learner, error) {
	if level == "" {
		level = "beginner"
	}

	_, err := s.learners.FindByUsername(username)
	if err == nil {
		return nil, util.ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	learner := &model.Learner{
		Username:        username,
		LearningGoals:   goals,
		ExperienceLevel: level,
	}
	if err := s.learners.Create(learner); err != nil {
		return nil, err
	}

	logger.Log.Info("learner registered",
		zap.Uint("learner_id", learner.ID),
		zap.String("username", learner.Username),
	)
	return learner, nil
}
