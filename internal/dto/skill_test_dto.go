package dto

import "time"

// QuestionCreateDTO adds one multiple-choice question to the reference pool.
type QuestionCreateDTO struct {
	QuestionText  string   `json:"question_text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	SkillCategory string   `json:"skill_category" binding:"required"`
}

// QuestionPublicDTO is the sanitized question view handed to candidates;
// it never includes the correct answer.
type QuestionPublicDTO struct {
	ID            uint     `json:"id"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	SkillCategory string   `json:"skill_category"`
}

type SkillTestStartResponse struct {
	TestID    uint                `json:"test_id"`
	Questions []QuestionPublicDTO `json:"questions"`
}

type AnswerSubmissionDTO struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedAnswer string `json:"selected_answer" binding:"required"`
}

type SkillTestSubmitRequest struct {
	Answers []AnswerSubmissionDTO `json:"answers" binding:"required,min=1,dive"`
}

type SkillTestSubmitResponse struct {
	TestResultID   uint `json:"test_result_id"`
	Score          int  `json:"score"`
	TotalQuestions int  `json:"total_questions"`
}

type SkillTestResultItemDTO struct {
	QuestionText   string `json:"question_text"`
	SelectedAnswer string `json:"selected_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

type SkillTestResultDetailDTO struct {
	ID             uint                     `json:"id"`
	CandidateID    uint                     `json:"candidate_id"`
	Score          *int                     `json:"score,omitempty"`
	TotalQuestions int                      `json:"total_questions"`
	StartTime      time.Time                `json:"start_time"`
	EndTime        *time.Time               `json:"end_time,omitempty"`
	Items          []SkillTestResultItemDTO `json:"items"`
}
