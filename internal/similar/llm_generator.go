package similar

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kaisuddinahmed/mymath/internal/engine"
	"github.com/kaisuddinahmed/mymath/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText string `json:"question_text"`
}

// Generate produces a single verified question for the given input.
// Retryable validation failures trigger a fresh generation, up to
// MaxAttempts total.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "similar-question")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	attempts := g.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("LLM generation failed: %w", err)
		}

		var raw questionOutput
		if err := json.Unmarshal(resp.Content, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse LLM response: %w", err)
		}

		q := &Question{
			Text:  raw.QuestionText,
			Grade: input.Grade,
			Topic: input.Topic,
		}

		verr := g.validate(q, input)
		if verr == nil {
			fillVerification(q)
			return q, nil
		}
		lastErr = verr
		if !verr.Retryable {
			return nil, verr
		}
	}

	return nil, fmt.Errorf("no valid question after %d attempts: %w", attempts, lastErr)
}

// validate runs the configured validators in order.
func (g *LLMGenerator) validate(q *Question, input GenerateInput) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return verr
		}
	}
	return nil
}

// fillVerification stamps the question with the engine's own resolution,
// so callers can show the verified answer next to the new question.
func fillVerification(q *Question) {
	result := engine.Solve(engine.Question{Text: q.Text, Grade: q.Grade})
	q.Topic = result.Topic
	q.Answer = result.Answer
	q.SolverUsed = string(result.SolverUsed)
}
