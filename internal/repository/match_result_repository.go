package repository

import (
	"github.com/mnhthng/recruitai/internal/model"
	"gorm.io/gorm"
)

type MatchResultRepository interface {
	Create(result *model.MatchResult) error
	FindAllByCandidateID(candidateID uint) ([]model.MatchResult, error)
}

type matchResultRepository struct {
	db *gorm.DB
}

func NewMatchResultRepository(db *gorm.DB) MatchResultRepository {
	return &matchResultRepository{db: db}
}

func (r *matchResultRepository) Create(result *model.MatchResult) error {
	return r.db.Create(result).Error
}

func (r *matchResultRepository) FindAllByCandidateID(candidateID uint) ([]model.MatchResult, error) {
	var results []model.MatchResult
	err := r.db.Where("candidate_id = ?", candidateID).Order("created_at DESC").Find(&results).Error
	return results, err
}
