package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mnhthng/recruitai/config"
	"github.com/rs/zerolog/log"
)

const (
	maxLLMAttempts  = 3
	baseRetryDelay  = 500 * time.Millisecond
	chatTemperature = 0.7
)

// MatchAnalysis is the CV/JD fit verdict. Degraded is set when the
// provider could not produce a usable reply and the zero-score default was
// substituted, so callers can tell an AI outage apart from a genuine
// zero-fit result.
type MatchAnalysis struct {
	Score          int
	Feedback       string
	Degraded       bool
	DegradedReason string
}

// SuggestionResult carries CV improvement suggestions.
type SuggestionResult struct {
	Suggestions    []string
	Degraded       bool
	DegradedReason string
}

// AnswerEvaluation scores a single interview answer against the JD.
type AnswerEvaluation struct {
	Score          int
	Feedback       string
	Degraded       bool
	DegradedReason string
}

// LLMService wraps the language-model provider. The three structured
// operations never return an error: after retries are exhausted or on a
// malformed reply they return a degraded default so the request path keeps
// working. ChatReply is free-form conversation and does surface errors.
type LLMService interface {
	MatchScore(ctx context.Context, cvText, jdText string) MatchAnalysis
	ImprovementSuggestions(ctx context.Context, cvText, jdText string) SuggestionResult
	EvaluateAnswer(ctx context.Context, question, answer, jdText string) AnswerEvaluation
	ChatReply(ctx context.Context, transcript []ChatTurn) (string, error)
}

type openAIService struct {
	client     *openai.Client
	model      string
	retryDelay time.Duration
}

func NewOpenAIService(cfg *config.Config) (LLMService, error) {
	if cfg.OpenAI.ApiKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set. LLM operations will return degraded defaults.")
	}
	client := openai.NewClient(cfg.OpenAI.ApiKey)
	return &openAIService{client: client, model: cfg.OpenAI.Model, retryDelay: baseRetryDelay}, nil
}

// newOpenAIServiceWithClient is used by tests to point the gateway at a
// stub server and shrink the backoff.
func newOpenAIServiceWithClient(client *openai.Client, model string, retryDelay time.Duration) *openAIService {
	return &openAIService{client: client, model: model, retryDelay: retryDelay}
}

const matchScoreSystemPrompt = "You are a recruitment assistant that analyzes CVs against job descriptions."

func matchScorePrompt(cvText, jdText string) string {
	var b strings.Builder
	b.WriteString("You are a recruitment expert. Compare the following CV with the job description (JD) below and give a detailed assessment.\n")
	b.WriteString("Your reply MUST be a JSON object with exactly two fields:\n")
	b.WriteString("- \"score\": an integer from 0 to 100 expressing how well the CV fits the JD (0 = no fit, 100 = perfect fit).\n")
	b.WriteString("- \"feedback\": a paragraph explaining the score, covering the CV's strengths and weaknesses relative to the JD.\n\n")
	b.WriteString("CV:\n---\n")
	b.WriteString(cvText)
	b.WriteString("\n---\n\nJob description (JD):\n---\n")
	b.WriteString(jdText)
	b.WriteString("\n---\n")
	return b.String()
}

const suggestionsSystemPrompt = "You are an assistant that suggests concrete CV improvements."

func suggestionsPrompt(cvText, jdText string) string {
	var b strings.Builder
	b.WriteString("You are a recruitment expert. Based on the CV below and the accompanying job description (JD), ")
	b.WriteString("give SPECIFIC and PRACTICAL suggestions for editing the CV so it matches the JD better.\n")
	b.WriteString("Your reply MUST be a JSON object with one field:\n")
	b.WriteString("- \"suggestions\": an array of strings, each a single concrete suggestion.\n\n")
	b.WriteString("Example:\n")
	b.WriteString(`{"suggestions": ["Add technical keywords such as 'Go' and 'PostgreSQL' to the summary section.", "Quantify project impact with concrete numbers (e.g. 'reduced costs by 15%')."]}`)
	b.WriteString("\n\nCV:\n---\n")
	b.WriteString(cvText)
	b.WriteString("\n---\n\nJob description (JD):\n---\n")
	b.WriteString(jdText)
	b.WriteString("\n---\n")
	return b.String()
}

const evaluateSystemPrompt = "You are an assistant that evaluates interview answers."

func evaluateAnswerPrompt(question, answer, jdText string) string {
	var b strings.Builder
	b.WriteString("You are a recruitment expert. Evaluate the candidate's answer to the interview question below, ")
	b.WriteString("judging relevance, clarity, depth of knowledge and fit with the job description (JD).\n")
	b.WriteString("Your reply MUST be a JSON object with exactly two fields:\n")
	b.WriteString("- \"score\": an integer from 0 to 100 (0 = unsuitable, 100 = excellent).\n")
	b.WriteString("- \"feedback\": a paragraph with detailed remarks on the answer, including strengths and areas to improve.\n\n")
	b.WriteString("Job description (JD):\n---\n")
	b.WriteString(jdText)
	b.WriteString("\n---\n\nInterview question:\n---\n")
	b.WriteString(question)
	b.WriteString("\n---\n\nCandidate's answer:\n---\n")
	b.WriteString(answer)
	b.WriteString("\n---\n")
	return b.String()
}

const interviewerSystemPrompt = "You are a preliminary interview chatbot for a Software Engineer position. " +
	"Your goal is to assess the candidate's knowledge, experience and soft skills. " +
	"Ask questions naturally and professionally and keep the conversation flowing. " +
	"Remember to greet the candidate and close the interview politely. " +
	"Start with an open question inviting the candidate to introduce themselves."

func (s *openAIService) MatchScore(ctx context.Context, cvText, jdText string) MatchAnalysis {
	raw, err := s.completeJSON(ctx, matchScoreSystemPrompt, matchScorePrompt(cvText, jdText))
	if err != nil {
		log.Error().Err(err).Msg("MatchScore: provider call failed, returning degraded default")
		return MatchAnalysis{
			Score:          0,
			Feedback:       "The AI analysis is currently unavailable. Please try again later.",
			Degraded:       true,
			DegradedReason: err.Error(),
		}
	}

	var payload struct {
		Score    float64 `json:"score"`
		Feedback string  `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("MatchScore: malformed provider reply")
		return MatchAnalysis{
			Score:          0,
			Feedback:       "The AI analysis returned an unreadable result. Please try again later.",
			Degraded:       true,
			DegradedReason: fmt.Sprintf("malformed provider reply: %v", err),
		}
	}

	return MatchAnalysis{Score: clampScore(int(payload.Score)), Feedback: payload.Feedback}
}

func (s *openAIService) ImprovementSuggestions(ctx context.Context, cvText, jdText string) SuggestionResult {
	raw, err := s.completeJSON(ctx, suggestionsSystemPrompt, suggestionsPrompt(cvText, jdText))
	if err != nil {
		log.Error().Err(err).Msg("ImprovementSuggestions: provider call failed, returning degraded default")
		return SuggestionResult{
			Suggestions:    []string{"Suggestions are currently unavailable. Please try again later."},
			Degraded:       true,
			DegradedReason: err.Error(),
		}
	}

	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("ImprovementSuggestions: malformed provider reply")
		return SuggestionResult{
			Suggestions:    []string{"Suggestions are currently unavailable. Please try again later."},
			Degraded:       true,
			DegradedReason: fmt.Sprintf("malformed provider reply: %v", err),
		}
	}

	return SuggestionResult{Suggestions: payload.Suggestions}
}

func (s *openAIService) EvaluateAnswer(ctx context.Context, question, answer, jdText string) AnswerEvaluation {
	raw, err := s.completeJSON(ctx, evaluateSystemPrompt, evaluateAnswerPrompt(question, answer, jdText))
	if err != nil {
		log.Error().Err(err).Msg("EvaluateAnswer: provider call failed, returning degraded default")
		return AnswerEvaluation{
			Score:          0,
			Feedback:       "The answer could not be evaluated. Please try again later.",
			Degraded:       true,
			DegradedReason: err.Error(),
		}
	}

	var payload struct {
		Score    float64 `json:"score"`
		Feedback string  `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("EvaluateAnswer: malformed provider reply")
		return AnswerEvaluation{
			Score:          0,
			Feedback:       "The answer could not be evaluated. Please try again later.",
			Degraded:       true,
			DegradedReason: fmt.Sprintf("malformed provider reply: %v", err),
		}
	}

	return AnswerEvaluation{Score: clampScore(int(payload.Score)), Feedback: payload.Feedback}
}

func (s *openAIService) ChatReply(ctx context.Context, transcript []ChatTurn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(transcript)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: interviewerSystemPrompt,
	})
	for _, turn := range transcript {
		role := openai.ChatMessageRoleUser
		if turn.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}

	resp, err := s.createWithRetry(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: chatTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("provider returned an empty reply")
	}
	return reply, nil
}

// completeJSON runs one structured call in JSON mode and returns the raw
// object text with any markdown fencing stripped.
func (s *openAIService) completeJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := s.createWithRetry(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("provider returned no choices")
	}
	return cleanJSONReply(resp.Choices[0].Message.Content), nil
}

// createWithRetry issues the request with up to maxLLMAttempts tries,
// doubling the delay between attempts. Only transient provider failures
// (timeouts, rate limits, 5xx) are retried.
func (s *openAIService) createWithRetry(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	var lastErr error
	delay := s.retryDelay

	for attempt := 1; attempt <= maxLLMAttempts; attempt++ {
		resp, err := s.client.CreateChatCompletion(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isTransient(err) {
			return openai.ChatCompletionResponse{}, err
		}
		if attempt == maxLLMAttempts {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("Transient LLM provider error, retrying")
		select {
		case <-ctx.Done():
			return openai.ChatCompletionResponse{}, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return openai.ChatCompletionResponse{}, fmt.Errorf("provider failed after %d attempts: %w", maxLLMAttempts, lastErr)
}

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	// Network-level failures (connection refused, per-attempt timeout).
	return true
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// cleanJSONReply strips markdown code fences some models wrap around JSON
// replies and trims to the outermost object.
func cleanJSONReply(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end > start {
		content = content[start : end+1]
	}
	return content
}
