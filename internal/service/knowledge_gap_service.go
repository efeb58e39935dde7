package service

import (
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
)

type KnowledgeGapService struct {
	gaps *repository.KnowledgeGapRepository
}

func NewKnowledgeGapService(gaps *repository.KnowledgeGapRepository) *KnowledgeGapService {
	return &KnowledgeGapService{gaps: gaps}
}

// ListGaps mirrors session listing: unknown learner ids yield an empty list,
// not an error.
func (s *KnowledgeGapService) ListGaps(learnerID uint) ([]model.KnowledgeGap, error) {
	return s.gaps.FindByLearner(learnerID)
}
