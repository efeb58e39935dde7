package repository

import (
	"learnsphere_backend/internal/model"

	"gorm.io/gorm"
)

type KnowledgeGapRepository struct {
	DB *gorm.DB
}

func NewKnowledgeGapRepository(db *gorm.DB) *KnowledgeGapRepository {
	return &KnowledgeGapRepository{DB: db}
}

// Create has no HTTP caller today. Gap identification is expected to land
// server-side, so the write path is kept alongside the read path.
func (r *KnowledgeGapRepository) Create(gap *model.KnowledgeGap) error {
	return r.DB.Create(gap).Error
}

func (r *KnowledgeGapRepository) FindByLearner(learnerID uint) ([]model.KnowledgeGap, error) {
	var gaps []model.KnowledgeGap
	err := r.DB.Where("learner_id = ?", learnerID).Order("id ASC").Find(&gaps).Error
	return gaps, err
}
