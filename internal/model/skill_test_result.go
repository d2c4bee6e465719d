package model

import (
	"time"

	"gorm.io/gorm"
)

// SkillTestResult is one skill-test instance for a candidate. Score must
// equal the number of items with IsCorrect set and never changes once
// EndTime is recorded.
type SkillTestResult struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	CandidateID    uint       `json:"candidate_id" gorm:"not null;index"`
	StartTime      time.Time  `json:"start_time" gorm:"autoCreateTime"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Score          *int       `json:"score,omitempty"`
	TotalQuestions int        `json:"total_questions" gorm:"not null"`

	Items []SkillTestResultItem `json:"items,omitempty" gorm:"foreignKey:TestResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Submitted reports whether the test has already been closed.
func (r *SkillTestResult) Submitted() bool {
	return r.EndTime != nil
}
