package repository

import (
	"github.com/mnhthng/recruitai/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository interface {
	Create(candidate *model.Candidate) error
	Update(candidate *model.Candidate) error
	FindByID(id uint) (*model.Candidate, error)
	FindByIDWithRelations(id uint) (*model.Candidate, error)
	FindByEmail(email string) (*model.Candidate, error)
	FindAll(offset, limit int) ([]model.Candidate, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *model.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *candidateRepository) Update(candidate *model.Candidate) error {
	return r.db.Save(candidate).Error
}

func (r *candidateRepository) FindByID(id uint) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.First(&candidate, id).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) FindByIDWithRelations(id uint) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.
		Preload("MatchResults", func(db *gorm.DB) *gorm.DB {
			return db.Order("match_results.created_at DESC")
		}).
		Preload("Interviews").
		Preload("SkillTestResults").
		First(&candidate, id).Error
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) FindByEmail(email string) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.Where("email = ?", email).First(&candidate).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) FindAll(offset, limit int) ([]model.Candidate, error) {
	var candidates []model.Candidate
	if err := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}
