package model

import (
	"time"

	"gorm.io/gorm"
)

type SkillTestResultItem struct {
	ID             uint     `gorm:"primarykey" json:"id"`
	TestResultID   uint     `json:"test_result_id" gorm:"not null;index"`
	QuestionID     uint     `json:"question_id" gorm:"not null;index"`
	Question       Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedAnswer string   `json:"selected_answer"`
	IsCorrect      bool     `json:"is_correct"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
