package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is immutable multiple-choice reference data for skill tests.
type Question struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	QuestionText string `json:"question_text" gorm:"type:text;not null"`
	// Options holds a JSON-encoded []string of answer choices.
	Options       string `json:"options" gorm:"type:text;not null"`
	CorrectAnswer string `json:"correct_answer" gorm:"not null"`
	SkillCategory string `json:"skill_category" gorm:"not null;index"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
