package repository

import (
	"github.com/mnhthng/recruitai/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(interview *model.Interview) error
	Update(interview *model.Interview) error
	FindBySessionID(sessionID string) (*model.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *model.Interview) error {
	return r.db.Create(interview).Error
}

func (r *interviewRepository) Update(interview *model.Interview) error {
	return r.db.Save(interview).Error
}

func (r *interviewRepository) FindBySessionID(sessionID string) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.Where("session_id = ?", sessionID).First(&interview).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}
