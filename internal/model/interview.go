package model

import (
	"time"

	"gorm.io/gorm"
)

type Interview struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	CandidateID     uint       `json:"candidate_id" gorm:"not null;index"`
	SessionID       string     `json:"session_id" gorm:"not null;uniqueIndex"`
	StartTime       time.Time  `json:"start_time" gorm:"autoCreateTime"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	OverallScore    *int       `json:"overall_score,omitempty"`
	OverallFeedback *string    `json:"overall_feedback,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Ended reports whether the interview session has been closed.
func (i *Interview) Ended() bool {
	return i.EndTime != nil
}
