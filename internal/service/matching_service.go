package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mnhthng/recruitai/internal/dto"
	"github.com/mnhthng/recruitai/internal/model"
	"github.com/mnhthng/recruitai/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UploadRequest carries the form fields and raw file contents of one
// CV/JD upload.
type UploadRequest struct {
	FullName        string
	Email           string
	AppliedPosition string
	CVData          []byte
	CVFilename      string
	JDData          []byte
	JDFilename      string
}

// MatchingService is the CV/JD pipeline: extract both documents, find or
// create the candidate by email, score the pair with the LLM gateway and
// persist one new MatchResult per run.
type MatchingService interface {
	ProcessUpload(ctx context.Context, req UploadRequest) (*dto.CVJDUploadResponse, error)
}

type matchingService struct {
	candidateRepo   repository.CandidateRepository
	matchResultRepo repository.MatchResultRepository
	extractor       ExtractorService
	llm             LLMService
}

func NewMatchingService(
	candidateRepo repository.CandidateRepository,
	matchResultRepo repository.MatchResultRepository,
	extractor ExtractorService,
	llm LLMService,
) MatchingService {
	return &matchingService{
		candidateRepo:   candidateRepo,
		matchResultRepo: matchResultRepo,
		extractor:       extractor,
		llm:             llm,
	}
}

func (s *matchingService) ProcessUpload(ctx context.Context, req UploadRequest) (*dto.CVJDUploadResponse, error) {
	cvText := s.extractor.ExtractText(req.CVData, req.CVFilename)
	if cvText == "" {
		return nil, fmt.Errorf("%w: could not extract text from the CV file, check the format (PDF/DOCX) and content", ErrValidation)
	}
	jdText := s.extractor.ExtractText(req.JDData, req.JDFilename)
	if jdText == "" {
		return nil, fmt.Errorf("%w: could not extract text from the JD file, check the format (PDF/DOCX) and content", ErrValidation)
	}

	candidate, err := s.findOrCreateCandidate(req)
	if err != nil {
		return nil, err
	}

	// Re-uploads overwrite the stored texts; match history accumulates
	// separately below.
	candidate.CVText = cvText
	candidate.JDText = jdText
	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, fmt.Errorf("failed to store extracted texts: %w", err)
	}

	// The two gateway calls are independent; run them concurrently and
	// persist only once both have completed.
	var (
		wg          sync.WaitGroup
		match       MatchAnalysis
		suggestions SuggestionResult
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		match = s.llm.MatchScore(ctx, cvText, jdText)
	}()
	go func() {
		defer wg.Done()
		suggestions = s.llm.ImprovementSuggestions(ctx, cvText, jdText)
	}()
	wg.Wait()

	suggestionsJSON, err := json.Marshal(suggestions.Suggestions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode suggestions: %w", err)
	}

	result := &model.MatchResult{
		CandidateID: candidate.ID,
		MatchScore:  match.Score,
		Feedback:    match.Feedback,
		Suggestions: string(suggestionsJSON),
	}
	if err := s.matchResultRepo.Create(result); err != nil {
		return nil, fmt.Errorf("failed to persist match result: %w", err)
	}

	degraded := match.Degraded || suggestions.Degraded
	reason := joinDegradedReasons(match.DegradedReason, suggestions.DegradedReason)
	if degraded {
		log.Warn().Uint("candidate_id", candidate.ID).Str("reason", reason).Msg("CV/JD analysis degraded to default values")
	}
	log.Info().Uint("candidate_id", candidate.ID).Int("match_score", match.Score).Msg("CV/JD upload processed")

	return &dto.CVJDUploadResponse{
		CandidateID:     candidate.ID,
		Message:         "Files processed and analyzed successfully.",
		CVTextExtracted: true,
		JDTextExtracted: true,
		MatchScore:      match.Score,
		Feedback:        match.Feedback,
		Suggestions:     suggestions.Suggestions,
		Degraded:        degraded,
		DegradedReason:  reason,
	}, nil
}

func (s *matchingService) findOrCreateCandidate(req UploadRequest) (*model.Candidate, error) {
	candidate, err := s.candidateRepo.FindByEmail(req.Email)
	if err == nil {
		return candidate, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up candidate by email: %w", err)
	}

	candidate = &model.Candidate{FullName: req.FullName, Email: req.Email}
	if req.AppliedPosition != "" {
		candidate.AppliedPosition = &req.AppliedPosition
	}
	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	log.Info().Uint("candidate_id", candidate.ID).Str("email", req.Email).Msg("Candidate created from upload")
	return candidate, nil
}

func joinDegradedReasons(reasons ...string) string {
	var parts []string
	for _, r := range reasons {
		if r != "" {
			parts = append(parts, r)
		}
	}
	return strings.Join(parts, "; ")
}
