package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mnhthng/recruitai/internal/dto"
	"github.com/mnhthng/recruitai/internal/model"
	"github.com/mnhthng/recruitai/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// openingPrompt is the fixed first assistant message of every interview.
const openingPrompt = "Hello! We are going to start the preliminary interview for the Software Engineer position. " +
	"Could you introduce yourself and tell me a bit about your experience?"

// InterviewService drives the scripted AI interview. A session moves
// not-started -> active -> ended; ended is terminal and ending twice is a
// conflict.
type InterviewService interface {
	Start(ctx context.Context, candidateID uint) (*dto.ChatbotResponseDTO, error)
	Chat(ctx context.Context, sessionID, message string) (*dto.ChatbotResponseDTO, error)
	Evaluate(ctx context.Context, req dto.EvaluationRequestDTO) (*dto.EvaluationResponseDTO, error)
	End(sessionID string) error
}

type interviewService struct {
	candidateRepo repository.CandidateRepository
	interviewRepo repository.InterviewRepository
	sessions      SessionStore
	llm           LLMService
}

func NewInterviewService(
	candidateRepo repository.CandidateRepository,
	interviewRepo repository.InterviewRepository,
	sessions SessionStore,
	llm LLMService,
) InterviewService {
	return &interviewService{
		candidateRepo: candidateRepo,
		interviewRepo: interviewRepo,
		sessions:      sessions,
		llm:           llm,
	}
}

func (s *interviewService) Start(ctx context.Context, candidateID uint) (*dto.ChatbotResponseDTO, error) {
	if _, err := s.candidateRepo.FindByID(candidateID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: candidate %d", ErrNotFound, candidateID)
		}
		return nil, fmt.Errorf("failed to load candidate %d: %w", candidateID, err)
	}

	sessionID := uuid.NewString()
	interview := &model.Interview{CandidateID: candidateID, SessionID: sessionID}
	if err := s.interviewRepo.Create(interview); err != nil {
		return nil, fmt.Errorf("failed to create interview record: %w", err)
	}

	s.sessions.Reset(sessionID)
	s.sessions.Append(sessionID, ChatTurn{Role: RoleAssistant, Content: openingPrompt})

	log.Info().Str("session_id", sessionID).Uint("candidate_id", candidateID).Msg("Interview session started")
	return &dto.ChatbotResponseDTO{
		Response:     openingPrompt,
		SessionID:    sessionID,
		FirstMessage: openingPrompt,
	}, nil
}

func (s *interviewService) Chat(ctx context.Context, sessionID, message string) (*dto.ChatbotResponseDTO, error) {
	interview, err := s.interviewRepo.FindBySessionID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: interview session %s", ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to load interview session: %w", err)
	}
	if interview.Ended() {
		return nil, fmt.Errorf("%w: interview session %s has already ended", ErrConflict, sessionID)
	}

	userTurn := ChatTurn{Role: RoleUser, Content: message}
	s.sessions.Append(sessionID, userTurn)

	transcript, ok := s.sessions.Get(sessionID)
	if !ok {
		// The row exists but the in-memory transcript is gone (e.g. after
		// a restart). Answer from the current message alone.
		log.Warn().Str("session_id", sessionID).Msg("Interview transcript missing from session store")
		transcript = []ChatTurn{userTurn}
	}

	reply, err := s.llm.ChatReply(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("interview chat failed: %w", err)
	}
	s.sessions.Append(sessionID, ChatTurn{Role: RoleAssistant, Content: reply})

	return &dto.ChatbotResponseDTO{Response: reply, SessionID: sessionID}, nil
}

func (s *interviewService) Evaluate(ctx context.Context, req dto.EvaluationRequestDTO) (*dto.EvaluationResponseDTO, error) {
	jdText := req.JDText
	if jdText == "" && req.CandidateID != nil {
		candidate, err := s.candidateRepo.FindByID(*req.CandidateID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load candidate %d: %w", *req.CandidateID, err)
		}
		if candidate != nil {
			jdText = candidate.JDText
		}
	}
	if jdText == "" {
		return nil, fmt.Errorf("%w: JD text is required for evaluation", ErrValidation)
	}

	evaluation := s.llm.EvaluateAnswer(ctx, req.Question, req.CandidateAnswer, jdText)
	if evaluation.Degraded {
		log.Warn().Str("reason", evaluation.DegradedReason).Msg("Answer evaluation degraded to default values")
	}
	return &dto.EvaluationResponseDTO{
		Score:          evaluation.Score,
		Feedback:       evaluation.Feedback,
		Degraded:       evaluation.Degraded,
		DegradedReason: evaluation.DegradedReason,
	}, nil
}

func (s *interviewService) End(sessionID string) error {
	interview, err := s.interviewRepo.FindBySessionID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: interview session %s", ErrNotFound, sessionID)
		}
		return fmt.Errorf("failed to load interview session: %w", err)
	}
	if interview.Ended() {
		return fmt.Errorf("%w: interview session %s has already ended", ErrConflict, sessionID)
	}

	now := time.Now().UTC()
	interview.EndTime = &now
	if err := s.interviewRepo.Update(interview); err != nil {
		return fmt.Errorf("failed to close interview session: %w", err)
	}

	// Free the transcript only once the row update succeeded, so a failed
	// end leaves the session usable.
	s.sessions.Delete(sessionID)
	log.Info().Str("session_id", sessionID).Msg("Interview session ended")
	return nil
}
