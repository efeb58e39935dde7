package service

import (
	"context"
	"errors"

	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/util"
	"learnsphere_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// defaultTopic is used when a session request carries no topic.
	defaultTopic = "Introduction to Programming"

	// practiceTopic labels sessions created by the standalone endpoint.
	practiceTopic = "AI-Generated Practice Content"

	demoUsername = "demo_learner"
	demoGoals    = "Explore the platform"
	demoLevel    = "beginner"
)

type SessionService struct {
	learners  *repository.LearnerRepository
	sessions  *repository.SessionRepository
	generator *GeneratorService
	demoID    uint
}

func NewSessionService(
	learners *repository.LearnerRepository,
	sessions *repository.SessionRepository,
	generator *GeneratorService,
	demoLearnerID uint,
) *SessionService {
	return &SessionService{
		learners:  learners,
		sessions:  sessions,
		generator: generator,
		demoID:    demoLearnerID,
	}
}

// CreateSession generates lesson content for the learner and persists it.
// The learner must exist; generation itself cannot fail, only degrade to
// the fallback template.
func (s *SessionService) CreateSession(ctx context.Context, learnerID uint, topic string) (*model.LearningSession, error) {
	learner, err := s.learners.FindByID(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}

	if topic == "" {
		topic = defaultTopic
	}

	content := s.generator.GenerateLesson(ctx, learner, topic)

	session := &model.LearningSession{
		LearnerID: learner.ID,
		Topic:     topic,
		Content:   content.Text,
		Progress:  0,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	logger.Log.Info("learning session created",
		zap.Uint("learner_id", learner.ID),
		zap.Uint("session_id", session.ID),
		zap.String("topic", topic),
		zap.String("source", string(content.Source)),
	)
	return session, nil
}

// ListSessions deliberately skips the learner existence check: an unknown id
// yields an empty list, not a 404.
func (s *SessionService) ListSessions(learnerID uint) ([]model.LearningSession, error) {
	return s.sessions.FindByLearner(learnerID)
}

// GeneratePractice backs the standalone endpoint. A zero learnerID falls
// back to the configured demo id; a missing learner is created under the
// requested id with the demo profile, so repeated calls reuse one row
// instead of piling up duplicates.
func (s *SessionService) GeneratePractice(ctx context.Context, learnerID uint) (*model.LearningSession, error) {
	if learnerID == 0 {
		learnerID = s.demoID
	}

	learner, err := s.learners.FindByID(learnerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		learner = &model.Learner{
			ID:              learnerID,
			Username:        demoUsername,
			LearningGoals:   demoGoals,
			ExperienceLevel: demoLevel,
		}
		if err := s.learners.Create(learner); err != nil {
			return nil, err
		}
		logger.Log.Info("demo learner created", zap.Uint("learner_id", learner.ID))
	}

	content := s.generator.GeneratePractice(ctx, learner)

	session := &model.LearningSession{
		LearnerID: learner.ID,
		Topic:     practiceTopic,
		Content:   content.Text,
		Progress:  0,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	logger.Log.Info("practice session created",
		zap.Uint("learner_id", learner.ID),
		zap.Uint("session_id", session.ID),
		zap.String("source", string(content.Source)),
	)
	return session, nil
}
