package model

import (
	"time"

	"gorm.io/gorm"
)

// MatchResult is one CV/JD evaluation run for a candidate. Rows are
// append-only; re-uploading produces a new row instead of overwriting.
type MatchResult struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	CandidateID uint   `json:"candidate_id" gorm:"not null;index"`
	MatchScore  int    `json:"match_score" gorm:"not null"`
	Feedback    string `json:"feedback" gorm:"type:text"`
	// Suggestions holds a JSON-encoded []string.
	Suggestions string `json:"suggestions" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
