package service

import (
	"context"
	"testing"

	"github.com/mnhthng/recruitai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchingFixture() (*fakeCandidateRepo, *fakeMatchResultRepo, *fakeLLM, MatchingService) {
	candidates := newFakeCandidateRepo()
	results := &fakeMatchResultRepo{}
	llm := &fakeLLM{
		match:       MatchAnalysis{Score: 75, Feedback: "Good fit"},
		suggestions: SuggestionResult{Suggestions: []string{"Add Go keywords"}},
	}
	extractor := &fakeExtractor{texts: map[string]string{
		"cv.pdf":  "cv content",
		"jd.docx": "jd content",
	}}
	svc := NewMatchingService(candidates, results, extractor, llm)
	return candidates, results, llm, svc
}

func uploadReq() UploadRequest {
	return UploadRequest{
		FullName:        "Ana Dev",
		Email:           "ana@example.com",
		AppliedPosition: "Backend Engineer",
		CVData:          []byte("pdf bytes"),
		CVFilename:      "cv.pdf",
		JDData:          []byte("docx bytes"),
		JDFilename:      "jd.docx",
	}
}

func TestProcessUpload_CreatesCandidateAndMatchResult(t *testing.T) {
	candidates, results, llm, svc := newMatchingFixture()

	resp, err := svc.ProcessUpload(context.Background(), uploadReq())

	require.NoError(t, err)
	assert.Equal(t, 75, resp.MatchScore)
	assert.Equal(t, "Good fit", resp.Feedback)
	assert.True(t, resp.CVTextExtracted)
	assert.True(t, resp.JDTextExtracted)
	assert.False(t, resp.Degraded)

	candidate, err := candidates.FindByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "cv content", candidate.CVText)
	assert.Equal(t, "jd content", candidate.JDText)
	require.NotNil(t, candidate.AppliedPosition)
	assert.Equal(t, "Backend Engineer", *candidate.AppliedPosition)

	require.Len(t, results.results, 1)
	assert.Equal(t, candidate.ID, results.results[0].CandidateID)
	assert.JSONEq(t, `["Add Go keywords"]`, results.results[0].Suggestions)

	assert.Equal(t, 1, llm.matchCalls)
	assert.Equal(t, 1, llm.suggCalls)
}

func TestProcessUpload_ReuploadReusesCandidateAndAccumulatesHistory(t *testing.T) {
	candidates, results, _, svc := newMatchingFixture()

	first, err := svc.ProcessUpload(context.Background(), uploadReq())
	require.NoError(t, err)
	second, err := svc.ProcessUpload(context.Background(), uploadReq())
	require.NoError(t, err)

	assert.Equal(t, first.CandidateID, second.CandidateID)
	assert.Len(t, candidates.candidates, 1)
	assert.Len(t, results.results, 2)
}

func TestProcessUpload_UnextractableCVIsValidationError(t *testing.T) {
	candidates, results, llm, svc := newMatchingFixture()

	req := uploadReq()
	req.CVFilename = "cv.txt"
	_, err := svc.ProcessUpload(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
	// No side effects: no candidate, no match result, no LLM calls.
	assert.Empty(t, candidates.candidates)
	assert.Empty(t, results.results)
	assert.Zero(t, llm.matchCalls)
}

func TestProcessUpload_UnextractableJDIsValidationError(t *testing.T) {
	candidates, _, _, svc := newMatchingFixture()

	req := uploadReq()
	req.JDFilename = "jd.exe"
	_, err := svc.ProcessUpload(context.Background(), req)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, candidates.candidates)
}

func TestProcessUpload_DegradedAnalysisIsFlaggedNotFailed(t *testing.T) {
	_, results, llm, svc := newMatchingFixture()
	llm.match = MatchAnalysis{Score: 0, Feedback: "unavailable", Degraded: true, DegradedReason: "provider failed after 3 attempts"}
	llm.suggestions = SuggestionResult{Suggestions: []string{"unavailable"}, Degraded: true, DegradedReason: "provider failed after 3 attempts"}

	resp, err := svc.ProcessUpload(context.Background(), uploadReq())

	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Contains(t, resp.DegradedReason, "provider failed")
	// The zero-score result is still persisted as part of the history.
	require.Len(t, results.results, 1)
	assert.Equal(t, 0, results.results[0].MatchScore)
}

func TestProcessUpload_OverwritesStoredTexts(t *testing.T) {
	candidates, _, _, svc := newMatchingFixture()
	existing := &model.Candidate{FullName: "Ana Dev", Email: "ana@example.com", CVText: "old cv", JDText: "old jd"}
	require.NoError(t, candidates.Create(existing))

	_, err := svc.ProcessUpload(context.Background(), uploadReq())

	require.NoError(t, err)
	candidate, _ := candidates.FindByEmail("ana@example.com")
	assert.Equal(t, "cv content", candidate.CVText)
	assert.Equal(t, "jd content", candidate.JDText)
}
