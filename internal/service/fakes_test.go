package service

import (
	"context"
	"errors"

	"github.com/mnhthng/recruitai/internal/model"
	"gorm.io/gorm"
)

// Hand-written fakes for the repository and gateway interfaces. They keep
// state in maps so tests can assert on side effects without a database.

type fakeCandidateRepo struct {
	candidates map[uint]*model.Candidate
	nextID     uint
	createErr  error
	updateErr  error
	updated    int
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[uint]*model.Candidate), nextID: 1}
}

func (f *fakeCandidateRepo) Create(candidate *model.Candidate) error {
	if f.createErr != nil {
		return f.createErr
	}
	candidate.ID = f.nextID
	f.nextID++
	f.candidates[candidate.ID] = candidate
	return nil
}

func (f *fakeCandidateRepo) Update(candidate *model.Candidate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated++
	f.candidates[candidate.ID] = candidate
	return nil
}

func (f *fakeCandidateRepo) FindByID(id uint) (*model.Candidate, error) {
	c, ok := f.candidates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCandidateRepo) FindByIDWithRelations(id uint) (*model.Candidate, error) {
	return f.FindByID(id)
}

func (f *fakeCandidateRepo) FindByEmail(email string) (*model.Candidate, error) {
	for _, c := range f.candidates {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCandidateRepo) FindAll(offset, limit int) ([]model.Candidate, error) {
	var out []model.Candidate
	for _, c := range f.candidates {
		out = append(out, *c)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeMatchResultRepo struct {
	results   []model.MatchResult
	createErr error
}

func (f *fakeMatchResultRepo) Create(result *model.MatchResult) error {
	if f.createErr != nil {
		return f.createErr
	}
	result.ID = uint(len(f.results) + 1)
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeMatchResultRepo) FindAllByCandidateID(candidateID uint) ([]model.MatchResult, error) {
	var out []model.MatchResult
	for _, r := range f.results {
		if r.CandidateID == candidateID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeInterviewRepo struct {
	interviews map[string]*model.Interview
	nextID     uint
	updateErr  error
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: make(map[string]*model.Interview), nextID: 1}
}

func (f *fakeInterviewRepo) Create(interview *model.Interview) error {
	interview.ID = f.nextID
	f.nextID++
	f.interviews[interview.SessionID] = interview
	return nil
}

func (f *fakeInterviewRepo) Update(interview *model.Interview) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.interviews[interview.SessionID] = interview
	return nil
}

func (f *fakeInterviewRepo) FindBySessionID(sessionID string) (*model.Interview, error) {
	iv, ok := f.interviews[sessionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return iv, nil
}

type fakeQuestionRepo struct {
	questions map[uint]*model.Question
	nextID    uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uint]*model.Question), nextID: 1}
}

func (f *fakeQuestionRepo) Create(question *model.Question) error {
	question.ID = f.nextID
	f.nextID++
	f.questions[question.ID] = question
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (f *fakeQuestionRepo) FindByCategory(category string, limit int) ([]model.Question, error) {
	var out []model.Question
	// Ascending id order, matching the real repository.
	for id := uint(1); id < f.nextID; id++ {
		q, ok := f.questions[id]
		if !ok || q.SkillCategory != category {
			continue
		}
		out = append(out, *q)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeSkillTestRepo struct {
	results  map[uint]*model.SkillTestResult
	items    map[uint][]model.SkillTestResultItem
	nextID   uint
	closeErr error
}

func newFakeSkillTestRepo() *fakeSkillTestRepo {
	return &fakeSkillTestRepo{
		results: make(map[uint]*model.SkillTestResult),
		items:   make(map[uint][]model.SkillTestResultItem),
		nextID:  1,
	}
}

func (f *fakeSkillTestRepo) Create(result *model.SkillTestResult) error {
	result.ID = f.nextID
	f.nextID++
	f.results[result.ID] = result
	return nil
}

func (f *fakeSkillTestRepo) FindByID(id uint) (*model.SkillTestResult, error) {
	r, ok := f.results[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeSkillTestRepo) FindByIDWithItems(id uint) (*model.SkillTestResult, error) {
	r, err := f.FindByID(id)
	if err != nil {
		return nil, err
	}
	r.Items = f.items[id]
	return r, nil
}

func (f *fakeSkillTestRepo) Close(result *model.SkillTestResult, items []model.SkillTestResultItem) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	f.items[result.ID] = items
	f.results[result.ID] = result
	return nil
}

type fakeLLM struct {
	match       MatchAnalysis
	suggestions SuggestionResult
	evaluation  AnswerEvaluation
	chatReply   string
	chatErr     error

	matchCalls int
	suggCalls  int
	evalCalls  int
	transcript []ChatTurn
}

func (f *fakeLLM) MatchScore(ctx context.Context, cvText, jdText string) MatchAnalysis {
	f.matchCalls++
	return f.match
}

func (f *fakeLLM) ImprovementSuggestions(ctx context.Context, cvText, jdText string) SuggestionResult {
	f.suggCalls++
	return f.suggestions
}

func (f *fakeLLM) EvaluateAnswer(ctx context.Context, question, answer, jdText string) AnswerEvaluation {
	f.evalCalls++
	return f.evaluation
}

func (f *fakeLLM) ChatReply(ctx context.Context, transcript []ChatTurn) (string, error) {
	f.transcript = transcript
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.chatReply, nil
}

// fakeExtractor maps filenames to extracted text; unknown names yield "".
type fakeExtractor struct {
	texts map[string]string
}

func (f *fakeExtractor) ExtractText(data []byte, filename string) string {
	return f.texts[filename]
}

type fakeMail struct {
	offers      []string
	onboardings []string
	err         error
}

func (f *fakeMail) SendOffer(toEmail, candidateName, positionName string) error {
	if f.err != nil {
		return errors.Join(ErrMailDelivery, f.err)
	}
	f.offers = append(f.offers, toEmail)
	return nil
}

func (f *fakeMail) SendOnboarding(toEmail, candidateName string) error {
	if f.err != nil {
		return errors.Join(ErrMailDelivery, f.err)
	}
	f.onboardings = append(f.onboardings, toEmail)
	return nil
}
