package service

import (
	"errors"
	"testing"

	"github.com/mnhthng/recruitai/internal/dto"
	"github.com/mnhthng/recruitai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillTestFixture() (*fakeCandidateRepo, *fakeQuestionRepo, *fakeSkillTestRepo, SkillTestService) {
	candidates := newFakeCandidateRepo()
	questions := newFakeQuestionRepo()
	tests := newFakeSkillTestRepo()
	svc := NewSkillTestService(candidates, questions, tests)
	return candidates, questions, tests, svc
}

func seedGolangQuestions(t *testing.T, questions *fakeQuestionRepo, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, questions.Create(&model.Question{
			QuestionText:  "What does the go keyword do?",
			Options:       `["Starts a goroutine","Imports a package","Defines a type"]`,
			CorrectAnswer: "Starts a goroutine",
			SkillCategory: "golang",
		}))
	}
}

func TestCreateQuestion_EncodesOptionsAndSanitizesResponse(t *testing.T) {
	_, questions, _, svc := newSkillTestFixture()

	resp, err := svc.CreateQuestion(dto.QuestionCreateDTO{
		QuestionText:  "Which type is a slice?",
		Options:       []string{"[]int", "map[int]int", "chan int"},
		CorrectAnswer: "[]int",
		SkillCategory: "golang",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"[]int", "map[int]int", "chan int"}, resp.Options)

	stored, err := questions.FindByID(resp.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `["[]int","map[int]int","chan int"]`, stored.Options)
}

func TestStart_SanitizedQuestionsWithoutCorrectAnswers(t *testing.T) {
	candidates, questions, tests, svc := newSkillTestFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "a@b.c"}))
	seedGolangQuestions(t, questions, 3)

	resp, err := svc.Start(1, "golang", 10)

	require.NoError(t, err)
	require.Len(t, resp.Questions, 3)
	for _, q := range resp.Questions {
		assert.NotEmpty(t, q.Options)
		assert.Equal(t, "golang", q.SkillCategory)
	}

	stored, err := tests.FindByID(resp.TestID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.TotalQuestions)
	assert.Nil(t, stored.Score)
}

func TestStart_FewerQuestionsThanLimit(t *testing.T) {
	candidates, questions, tests, svc := newSkillTestFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "a@b.c"}))
	seedGolangQuestions(t, questions, 3)

	resp, err := svc.Start(1, "golang", 5)

	require.NoError(t, err)
	assert.Len(t, resp.Questions, 3)
	stored, _ := tests.FindByID(resp.TestID)
	assert.Equal(t, 3, stored.TotalQuestions)
}

func TestStart_EmptyCategoryIsNotFound(t *testing.T) {
	candidates, _, _, svc := newSkillTestFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "a@b.c"}))

	_, err := svc.Start(1, "cobol", 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStart_UnknownCandidate(t *testing.T) {
	_, questions, _, svc := newSkillTestFixture()
	seedGolangQuestions(t, questions, 1)

	_, err := svc.Start(9, "golang", 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmit_ScoreIsCountOfCorrectAnswers(t *testing.T) {
	candidates, questions, tests, svc := newSkillTestFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "a@b.c"}))
	seedGolangQuestions(t, questions, 3)
	started, err := svc.Start(1, "golang", 10)
	require.NoError(t, err)

	resp, err := svc.Submit(started.TestID, []dto.AnswerSubmissionDTO{
		{QuestionID: 1, SelectedAnswer: "Starts a goroutine"},
		{QuestionID: 2, SelectedAnswer: "Imports a package"},
		{QuestionID: 3, SelectedAnswer: "Starts a goroutine"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Score)
	assert.Equal(t, 3, resp.TotalQuestions)

	stored, _ := tests.FindByID(started.TestID)
	assert.True(t, stored.Submitted())
	require.NotNil(t, stored.Score)
	assert.Equal(t, 2, *stored.Score)
}

func TestSubmit_TwiceIsConflict(t *testing.T) {
	candidates, questions, _, svc := newSkillTestFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "a@b.c"}))
	seedGolangQuestions(t, questions, 1)
	started, err := svc.Start(1, "golang", 10)
	require.NoError(t, err)

	answers := []dto.AnswerSubmissionDTO{{QuestionID: 1, SelectedAnswer: "Starts a goroutine"}}
	_, err = svc.Submit(started.TestID, answers)
	require.NoError(t, err)

	_, err = svc.Submit(started.TestID, answers)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSubmit_UnknownTest(t *testing.T) {
	_, _, _, svc := newSkillTestFixture()

	_, err := svc.Submit(99, []dto.AnswerSubmissionDTO{{QuestionID: 1, SelectedAnswer: "x"}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmit_SkipsUnknownQuestions(t *testing.T) {
	candidates, questions, _, svc := newSkillTestFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "a@b.c"}))
	seedGolangQuestions(t, questions, 1)
	started, err := svc.Start(1, "golang", 10)
	require.NoError(t, err)

	resp, err := svc.Submit(started.TestID, []dto.AnswerSubmissionDTO{
		{QuestionID: 1, SelectedAnswer: "Starts a goroutine"},
		{QuestionID: 77, SelectedAnswer: "ghost answer"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Score)
}

func TestSubmit_FailedCloseLeavesTestOpen(t *testing.T) {
	candidates, questions, tests, svc := newSkillTestFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "a@b.c"}))
	seedGolangQuestions(t, questions, 1)
	started, err := svc.Start(1, "golang", 10)
	require.NoError(t, err)
	tests.closeErr = errors.New("db down")

	_, err = svc.Submit(started.TestID, []dto.AnswerSubmissionDTO{{QuestionID: 1, SelectedAnswer: "Starts a goroutine"}})

	require.Error(t, err)
	assert.Empty(t, tests.items[started.TestID])
}

func TestResults_IncludesPerQuestionCorrectness(t *testing.T) {
	candidates, questions, _, svc := newSkillTestFixture()
	require.NoError(t, candidates.Create(&model.Candidate{Email: "a@b.c"}))
	seedGolangQuestions(t, questions, 2)
	started, err := svc.Start(1, "golang", 10)
	require.NoError(t, err)
	_, err = svc.Submit(started.TestID, []dto.AnswerSubmissionDTO{
		{QuestionID: 1, SelectedAnswer: "Starts a goroutine"},
		{QuestionID: 2, SelectedAnswer: "Defines a type"},
	})
	require.NoError(t, err)

	detail, err := svc.Results(started.TestID)

	require.NoError(t, err)
	require.NotNil(t, detail.Score)
	assert.Equal(t, 1, *detail.Score)
	require.Len(t, detail.Items, 2)
	assert.True(t, detail.Items[0].IsCorrect)
	assert.False(t, detail.Items[1].IsCorrect)
}
