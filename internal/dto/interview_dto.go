package dto

// ChatMessageDTO carries one user message for an active interview session.
type ChatMessageDTO struct {
	Message string `json:"message" binding:"required"`
}

type ChatbotResponseDTO struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	// FirstMessage is set only on session start and repeats the opening
	// prompt for clients that render the transcript separately.
	FirstMessage string `json:"first_message,omitempty"`
}

// EvaluationRequestDTO asks for an AI assessment of a single answer.
// JDText is optional when CandidateID is given; the candidate's stored
// job description is used as context in that case.
type EvaluationRequestDTO struct {
	CandidateID     *uint  `json:"candidate_id"`
	Question        string `json:"question" binding:"required"`
	CandidateAnswer string `json:"candidate_answer" binding:"required"`
	JDText          string `json:"jd_text"`
}

type EvaluationResponseDTO struct {
	Score          int    `json:"score"`
	Feedback       string `json:"feedback"`
	Degraded       bool   `json:"degraded"`
	DegradedReason string `json:"degraded_reason,omitempty"`
}
