package service

import (
	"testing"

	"github.com/mnhthng/recruitai/internal/dto"
	"github.com/mnhthng/recruitai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCandidateFixture() (*fakeCandidateRepo, *fakeMail, CandidateService) {
	candidates := newFakeCandidateRepo()
	mail := &fakeMail{}
	svc := NewCandidateService(candidates, mail)
	return candidates, mail, svc
}

func TestCandidateCreate_Success(t *testing.T) {
	_, _, svc := newCandidateFixture()

	phone := "+84123456789"
	resp, err := svc.Create(dto.CandidateCreateDTO{
		FullName:    "Ana Dev",
		Email:       "ana@example.com",
		PhoneNumber: &phone,
	})

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Ana Dev", resp.FullName)
	require.NotNil(t, resp.PhoneNumber)
	assert.Equal(t, phone, *resp.PhoneNumber)
}

func TestCandidateCreate_DuplicateEmailIsConflict(t *testing.T) {
	candidates, _, svc := newCandidateFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "ana@example.com"}))

	_, err := svc.Create(dto.CandidateCreateDTO{FullName: "Ana", Email: "ana@example.com"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCandidateGet_DecodesSuggestions(t *testing.T) {
	candidates, _, svc := newCandidateFixture()
	candidate := &model.Candidate{FullName: "Ana", Email: "ana@example.com"}
	require.NoError(t, candidates.Create(candidate))
	candidate.MatchResults = []model.MatchResult{
		{CandidateID: candidate.ID, MatchScore: 80, Feedback: "ok", Suggestions: `["Add Go","Add SQL"]`},
	}

	detail, err := svc.Get(candidate.ID)

	require.NoError(t, err)
	require.Len(t, detail.MatchResults, 1)
	assert.Equal(t, []string{"Add Go", "Add SQL"}, detail.MatchResults[0].Suggestions)
}

func TestCandidateGet_MalformedSuggestionsFallBackToEmptyList(t *testing.T) {
	candidates, _, svc := newCandidateFixture()
	candidate := &model.Candidate{Email: "ana@example.com"}
	require.NoError(t, candidates.Create(candidate))
	candidate.MatchResults = []model.MatchResult{{CandidateID: candidate.ID, Suggestions: `not json`}}

	detail, err := svc.Get(candidate.ID)

	require.NoError(t, err)
	require.Len(t, detail.MatchResults, 1)
	assert.Empty(t, detail.MatchResults[0].Suggestions)
}

func TestCandidateGet_Unknown(t *testing.T) {
	_, _, svc := newCandidateFixture()

	_, err := svc.Get(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCandidateList_CapsLimit(t *testing.T) {
	candidates, _, svc := newCandidateFixture()
	for i := 0; i < 3; i++ {
		require.NoError(t, candidates.Create(&model.Candidate{Email: string(rune('a'+i)) + "@x.io"}))
	}

	out, err := svc.List(0, 2)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	all, err := svc.List(-1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSendOffer_Success(t *testing.T) {
	candidates, mail, svc := newCandidateFixture()
	require.NoError(t, candidates.Create(&model.Candidate{FullName: "Ana", Email: "ana@example.com"}))

	err := svc.SendOffer(dto.SendOfferRequest{
		CandidateID:    1,
		RecipientEmail: "ana@example.com",
		CandidateName:  "Ana",
		PositionName:   "Backend Engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, mail.offers)
}

func TestSendOffer_RecipientMismatchIsValidationError(t *testing.T) {
	candidates, mail, svc := newCandidateFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "ana@example.com"}))

	err := svc.SendOffer(dto.SendOfferRequest{
		CandidateID:    1,
		RecipientEmail: "someone-else@example.com",
		CandidateName:  "Ana",
		PositionName:   "Backend Engineer",
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, mail.offers)
}

func TestSendOffer_UnknownCandidate(t *testing.T) {
	_, _, svc := newCandidateFixture()

	err := svc.SendOffer(dto.SendOfferRequest{
		CandidateID:    12,
		RecipientEmail: "x@y.z",
		CandidateName:  "X",
		PositionName:   "P",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSendOnboarding_Success(t *testing.T) {
	candidates, mail, svc := newCandidateFixture()
	require.NoError(t, candidates.Create(&model.Candidate{FullName: "Ana", Email: "ana@example.com"}))

	err := svc.SendOnboarding(dto.SendOnboardingRequest{
		CandidateID:    1,
		RecipientEmail: "ana@example.com",
		CandidateName:  "Ana",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, mail.onboardings)
}

func TestSendOnboarding_RecipientMismatchIsValidationError(t *testing.T) {
	candidates, mail, svc := newCandidateFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "ana@example.com"}))

	err := svc.SendOnboarding(dto.SendOnboardingRequest{
		CandidateID:    1,
		RecipientEmail: "other@example.com",
		CandidateName:  "Ana",
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, mail.onboardings)
}

func TestSendOffer_MailFailureIsDeliveryError(t *testing.T) {
	candidates, mail, svc := newCandidateFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "ana@example.com"}))
	mail.err = assert.AnError

	err := svc.SendOffer(dto.SendOfferRequest{
		CandidateID:    1,
		RecipientEmail: "ana@example.com",
		CandidateName:  "Ana",
		PositionName:   "Backend Engineer",
	})
	assert.ErrorIs(t, err, ErrMailDelivery)
}
