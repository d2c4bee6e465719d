package repository

import (
	"github.com/mnhthng/recruitai/internal/model"
	"gorm.io/gorm"
)

type SkillTestRepository interface {
	Create(result *model.SkillTestResult) error
	FindByID(id uint) (*model.SkillTestResult, error)
	FindByIDWithItems(id uint) (*model.SkillTestResult, error)
	// Close persists the score, end time and answer items in a single
	// transaction so a test is never half-submitted.
	Close(result *model.SkillTestResult, items []model.SkillTestResultItem) error
}

type skillTestRepository struct {
	db *gorm.DB
}

func NewSkillTestRepository(db *gorm.DB) SkillTestRepository {
	return &skillTestRepository{db: db}
}

func (r *skillTestRepository) Create(result *model.SkillTestResult) error {
	return r.db.Create(result).Error
}

func (r *skillTestRepository) FindByID(id uint) (*model.SkillTestResult, error) {
	var result model.SkillTestResult
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *skillTestRepository) FindByIDWithItems(id uint) (*model.SkillTestResult, error) {
	var result model.SkillTestResult
	err := r.db.
		Preload("Items.Question").
		First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *skillTestRepository) Close(result *model.SkillTestResult, items []model.SkillTestResultItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return tx.Save(result).Error
	})
}
