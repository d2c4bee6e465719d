package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mnhthng/recruitai/internal/dto"
	"github.com/mnhthng/recruitai/internal/model"
	"github.com/mnhthng/recruitai/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SkillTestService manages the multiple-choice question pool and the
// start/submit/results lifecycle of skill tests.
type SkillTestService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionPublicDTO, error)
	QuestionsByCategory(category string, limit int) ([]dto.QuestionPublicDTO, error)
	Start(candidateID uint, category string, limit int) (*dto.SkillTestStartResponse, error)
	Submit(testID uint, answers []dto.AnswerSubmissionDTO) (*dto.SkillTestSubmitResponse, error)
	Results(testID uint) (*dto.SkillTestResultDetailDTO, error)
}

type skillTestService struct {
	candidateRepo repository.CandidateRepository
	questionRepo  repository.QuestionRepository
	testRepo      repository.SkillTestRepository
}

func NewSkillTestService(
	candidateRepo repository.CandidateRepository,
	questionRepo repository.QuestionRepository,
	testRepo repository.SkillTestRepository,
) SkillTestService {
	return &skillTestService{
		candidateRepo: candidateRepo,
		questionRepo:  questionRepo,
		testRepo:      testRepo,
	}
}

func (s *skillTestService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionPublicDTO, error) {
	optionsJSON, err := json.Marshal(req.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options: %w", err)
	}

	question := &model.Question{
		QuestionText:  req.QuestionText,
		Options:       string(optionsJSON),
		CorrectAnswer: req.CorrectAnswer,
		SkillCategory: req.SkillCategory,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	public := sanitizeQuestion(question)
	return &public, nil
}

func (s *skillTestService) QuestionsByCategory(category string, limit int) ([]dto.QuestionPublicDTO, error) {
	questions, err := s.questionRepo.FindByCategory(category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}

	public := make([]dto.QuestionPublicDTO, 0, len(questions))
	for i := range questions {
		public = append(public, sanitizeQuestion(&questions[i]))
	}
	return public, nil
}

func (s *skillTestService) Start(candidateID uint, category string, limit int) (*dto.SkillTestStartResponse, error) {
	if _, err := s.candidateRepo.FindByID(candidateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: candidate %d", ErrNotFound, candidateID)
		}
		return nil, fmt.Errorf("failed to load candidate %d: %w", candidateID, err)
	}

	questions, err := s.questionRepo.FindByCategory(category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions for category %q", ErrNotFound, category)
	}

	// TotalQuestions is fixed at selection time; fewer questions than the
	// requested limit is not an error.
	result := &model.SkillTestResult{
		CandidateID:    candidateID,
		TotalQuestions: len(questions),
	}
	if err := s.testRepo.Create(result); err != nil {
		return nil, fmt.Errorf("failed to create skill test: %w", err)
	}

	public := make([]dto.QuestionPublicDTO, 0, len(questions))
	for i := range questions {
		public = append(public, sanitizeQuestion(&questions[i]))
	}

	log.Info().Uint("test_id", result.ID).Uint("candidate_id", candidateID).Str("category", category).Int("question_count", len(questions)).Msg("Skill test started")
	return &dto.SkillTestStartResponse{TestID: result.ID, Questions: public}, nil
}

func (s *skillTestService) Submit(testID uint, answers []dto.AnswerSubmissionDTO) (*dto.SkillTestSubmitResponse, error) {
	result, err := s.testRepo.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: skill test %d", ErrNotFound, testID)
		}
		return nil, fmt.Errorf("failed to load skill test %d: %w", testID, err)
	}
	if result.Submitted() {
		return nil, fmt.Errorf("%w: skill test %d has already been submitted", ErrConflict, testID)
	}

	score := 0
	items := make([]model.SkillTestResultItem, 0, len(answers))
	for _, answer := range answers {
		question, err := s.questionRepo.FindByID(answer.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn().Uint("question_id", answer.QuestionID).Uint("test_id", testID).Msg("Submitted answer references an unknown question, skipping")
				continue
			}
			return nil, fmt.Errorf("failed to load question %d: %w", answer.QuestionID, err)
		}

		isCorrect := answer.SelectedAnswer == question.CorrectAnswer
		if isCorrect {
			score++
		}
		items = append(items, model.SkillTestResultItem{
			TestResultID:   testID,
			QuestionID:     question.ID,
			SelectedAnswer: answer.SelectedAnswer,
			IsCorrect:      isCorrect,
		})
	}

	now := time.Now().UTC()
	result.Score = &score
	result.EndTime = &now
	if err := s.testRepo.Close(result, items); err != nil {
		return nil, fmt.Errorf("failed to close skill test %d: %w", testID, err)
	}

	log.Info().Uint("test_id", testID).Int("score", score).Int("total", result.TotalQuestions).Msg("Skill test submitted")
	return &dto.SkillTestSubmitResponse{
		TestResultID:   result.ID,
		Score:          score,
		TotalQuestions: result.TotalQuestions,
	}, nil
}

func (s *skillTestService) Results(testID uint) (*dto.SkillTestResultDetailDTO, error) {
	result, err := s.testRepo.FindByIDWithItems(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: skill test %d", ErrNotFound, testID)
		}
		return nil, fmt.Errorf("failed to load skill test %d: %w", testID, err)
	}

	items := make([]dto.SkillTestResultItemDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, dto.SkillTestResultItemDTO{
			QuestionText:   item.Question.QuestionText,
			SelectedAnswer: item.SelectedAnswer,
			IsCorrect:      item.IsCorrect,
		})
	}

	return &dto.SkillTestResultDetailDTO{
		ID:             result.ID,
		CandidateID:    result.CandidateID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Items:          items,
	}, nil
}

// sanitizeQuestion converts a question to its public view, decoding the
// options and leaving out the correct answer.
func sanitizeQuestion(q *model.Question) dto.QuestionPublicDTO {
	var options []string
	if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
		log.Warn().Err(err).Uint("question_id", q.ID).Msg("Question has malformed options payload")
		options = []string{}
	}
	return dto.QuestionPublicDTO{
		ID:            q.ID,
		QuestionText:  q.QuestionText,
		Options:       options,
		SkillCategory: q.SkillCategory,
	}
}
