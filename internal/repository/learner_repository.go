package repository

import (
	"learnsphere_backend/internal/model"

	"gorm.io/gorm"
)

type LearnerRepository struct {
	DB *gorm.DB
}

func NewLearnerRepository(db *gorm.DB) *LearnerRepository {
	return &LearnerRepository{DB: db}
}

func (r *LearnerRepository) Create(learner *model.Learner) error {
	return r.DB.Create(learner).Error
}

func (r *LearnerRepository) FindByID(id uint) (*model.Learner, error) {
	var learner model.Learner
	err := r.DB.First(&learner, id).Error
	return &learner, err
}

func (r *LearnerRepository) FindByUsername(username string) (*model.Learner, error) {
	var learner model.Learner
	err := r.DB.Where("username = ?", username).First(&learner).Error
	return &learner, err
}
