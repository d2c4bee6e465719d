package dto

import "time"

// CandidateCreateDTO is the body for explicit candidate creation.
type CandidateCreateDTO struct {
	FullName        string  `json:"full_name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	PhoneNumber     *string `json:"phone_number"`
	AppliedPosition *string `json:"applied_position"`
}

type CandidateSummaryDTO struct {
	ID              uint      `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	PhoneNumber     *string   `json:"phone_number,omitempty"`
	AppliedPosition *string   `json:"applied_position,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// MatchResultDTO exposes one evaluation run with suggestions decoded back
// into a list.
type MatchResultDTO struct {
	ID          uint      `json:"id"`
	MatchScore  int       `json:"match_score"`
	Feedback    string    `json:"feedback"`
	Suggestions []string  `json:"suggestions"`
	CreatedAt   time.Time `json:"created_at"`
}

type InterviewSummaryDTO struct {
	ID              uint       `json:"id"`
	SessionID       string     `json:"session_id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	OverallScore    *int       `json:"overall_score,omitempty"`
	OverallFeedback *string    `json:"overall_feedback,omitempty"`
}

type SkillTestSummaryDTO struct {
	ID             uint       `json:"id"`
	Score          *int       `json:"score,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
}

// CandidateDetailDTO is the full candidate view with evaluation history.
type CandidateDetailDTO struct {
	ID              uint                  `json:"id"`
	FullName        string                `json:"full_name"`
	Email           string                `json:"email"`
	PhoneNumber     *string               `json:"phone_number,omitempty"`
	AppliedPosition *string               `json:"applied_position,omitempty"`
	MatchResults    []MatchResultDTO      `json:"match_results"`
	Interviews      []InterviewSummaryDTO `json:"interviews"`
	SkillTests      []SkillTestSummaryDTO `json:"skill_tests"`
	CreatedAt       time.Time             `json:"created_at"`
}

// CVJDUploadResponse is returned by the upload pipeline. Degraded is set
// when the AI provider could not be reached and default values were used.
type CVJDUploadResponse struct {
	CandidateID     uint     `json:"candidate_id"`
	Message         string   `json:"message"`
	CVTextExtracted bool     `json:"cv_text_extracted"`
	JDTextExtracted bool     `json:"jd_text_extracted"`
	MatchScore      int      `json:"match_score"`
	Feedback        string   `json:"feedback"`
	Suggestions     []string `json:"suggestions"`
	Degraded        bool     `json:"degraded"`
	DegradedReason  string   `json:"degraded_reason,omitempty"`
}

// SendOfferRequest asks the system to mail a job offer to a candidate.
type SendOfferRequest struct {
	CandidateID    uint   `json:"candidate_id" binding:"required"`
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	CandidateName  string `json:"candidate_name" binding:"required"`
	PositionName   string `json:"position_name" binding:"required"`
}

// SendOnboardingRequest asks the system to mail the onboarding welcome to
// a hired candidate.
type SendOnboardingRequest struct {
	CandidateID    uint   `json:"candidate_id" binding:"required"`
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	CandidateName  string `json:"candidate_name" binding:"required"`
}
