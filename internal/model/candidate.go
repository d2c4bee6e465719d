package model

import (
	"time"

	"gorm.io/gorm"
)

type Candidate struct {
	ID              uint    `gorm:"primarykey" json:"id"`
	FullName        string  `json:"full_name" gorm:"not null"`
	Email           string  `json:"email" gorm:"not null;uniqueIndex"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	AppliedPosition *string `json:"applied_position,omitempty"`
	CVText          string  `json:"cv_text,omitempty" gorm:"type:text"`
	JDText          string  `json:"jd_text,omitempty" gorm:"type:text"`

	MatchResults     []MatchResult     `json:"match_results,omitempty" gorm:"foreignKey:CandidateID"`
	Interviews       []Interview       `json:"interviews,omitempty" gorm:"foreignKey:CandidateID"`
	SkillTestResults []SkillTestResult `json:"skill_test_results,omitempty" gorm:"foreignKey:CandidateID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
