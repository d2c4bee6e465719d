package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/mnhthng/recruitai/internal/dto"
	"github.com/mnhthng/recruitai/internal/model"
	"github.com/mnhthng/recruitai/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CandidateService covers candidate CRUD plus offer/onboarding mail.
type CandidateService interface {
	Create(req dto.CandidateCreateDTO) (*dto.CandidateSummaryDTO, error)
	List(offset, limit int) ([]dto.CandidateSummaryDTO, error)
	Get(id uint) (*dto.CandidateDetailDTO, error)
	SendOffer(req dto.SendOfferRequest) error
	SendOnboarding(req dto.SendOnboardingRequest) error
}

type candidateService struct {
	candidateRepo repository.CandidateRepository
	mail          MailService
}

func NewCandidateService(candidateRepo repository.CandidateRepository, mail MailService) CandidateService {
	return &candidateService{candidateRepo: candidateRepo, mail: mail}
}

func (s *candidateService) Create(req dto.CandidateCreateDTO) (*dto.CandidateSummaryDTO, error) {
	if _, err := s.candidateRepo.FindByEmail(req.Email); err == nil {
		return nil, fmt.Errorf("%w: a candidate with email %s already exists", ErrConflict, req.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up candidate by email: %w", err)
	}

	candidate := &model.Candidate{
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		AppliedPosition: req.AppliedPosition,
	}
	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	var resp dto.CandidateSummaryDTO
	if err := copier.Copy(&resp, candidate); err != nil {
		return nil, fmt.Errorf("error preparing candidate response: %w", err)
	}
	return &resp, nil
}

func (s *candidateService) List(offset, limit int) ([]dto.CandidateSummaryDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	candidates, err := s.candidateRepo.FindAll(offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	summaries := make([]dto.CandidateSummaryDTO, 0, len(candidates))
	for i := range candidates {
		var summary dto.CandidateSummaryDTO
		if err := copier.Copy(&summary, &candidates[i]); err != nil {
			log.Error().Err(err).Uint("candidate_id", candidates[i].ID).Msg("Error copying candidate to summary DTO")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *candidateService) Get(id uint) (*dto.CandidateDetailDTO, error) {
	candidate, err := s.candidateRepo.FindByIDWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: candidate %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load candidate %d: %w", id, err)
	}

	detail := &dto.CandidateDetailDTO{
		ID:              candidate.ID,
		FullName:        candidate.FullName,
		Email:           candidate.Email,
		PhoneNumber:     candidate.PhoneNumber,
		AppliedPosition: candidate.AppliedPosition,
		CreatedAt:       candidate.CreatedAt,
		MatchResults:    make([]dto.MatchResultDTO, 0, len(candidate.MatchResults)),
		Interviews:      make([]dto.InterviewSummaryDTO, 0, len(candidate.Interviews)),
		SkillTests:      make([]dto.SkillTestSummaryDTO, 0, len(candidate.SkillTestResults)),
	}

	for _, mr := range candidate.MatchResults {
		detail.MatchResults = append(detail.MatchResults, dto.MatchResultDTO{
			ID:          mr.ID,
			MatchScore:  mr.MatchScore,
			Feedback:    mr.Feedback,
			Suggestions: decodeSuggestions(mr.Suggestions),
			CreatedAt:   mr.CreatedAt,
		})
	}
	for _, iv := range candidate.Interviews {
		var summary dto.InterviewSummaryDTO
		copier.Copy(&summary, &iv)
		detail.Interviews = append(detail.Interviews, summary)
	}
	for _, st := range candidate.SkillTestResults {
		var summary dto.SkillTestSummaryDTO
		copier.Copy(&summary, &st)
		detail.SkillTests = append(detail.SkillTests, summary)
	}

	return detail, nil
}

func (s *candidateService) SendOffer(req dto.SendOfferRequest) error {
	candidate, err := s.candidateRepo.FindByID(req.CandidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: candidate %d", ErrNotFound, req.CandidateID)
		}
		return fmt.Errorf("failed to load candidate %d: %w", req.CandidateID, err)
	}

	// Guard against mailing an offer to an address that does not belong
	// to the candidate on file.
	if candidate.Email != req.RecipientEmail {
		return fmt.Errorf("%w: recipient email does not match the candidate's email on record", ErrValidation)
	}

	if err := s.mail.SendOffer(req.RecipientEmail, req.CandidateName, req.PositionName); err != nil {
		return err
	}
	log.Info().Uint("candidate_id", req.CandidateID).Str("position", req.PositionName).Msg("Offer email sent to candidate")
	return nil
}

func (s *candidateService) SendOnboarding(req dto.SendOnboardingRequest) error {
	candidate, err := s.candidateRepo.FindByID(req.CandidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: candidate %d", ErrNotFound, req.CandidateID)
		}
		return fmt.Errorf("failed to load candidate %d: %w", req.CandidateID, err)
	}
	if candidate.Email != req.RecipientEmail {
		return fmt.Errorf("%w: recipient email does not match the candidate's email on record", ErrValidation)
	}

	if err := s.mail.SendOnboarding(req.RecipientEmail, req.CandidateName); err != nil {
		return err
	}
	log.Info().Uint("candidate_id", req.CandidateID).Msg("Onboarding email sent to candidate")
	return nil
}

func decodeSuggestions(encoded string) []string {
	if encoded == "" {
		return []string{}
	}
	var suggestions []string
	if err := json.Unmarshal([]byte(encoded), &suggestions); err != nil {
		log.Warn().Err(err).Msg("Match result has malformed suggestions payload")
		return []string{}
	}
	return suggestions
}
