package similar

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/llm"
	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

func additionInput() GenerateInput {
	return GenerateInput{
		Original: "What is 2 + 3?",
		Topic:    topicgraph.Addition,
		Grade:    1,
	}
}

func questionJSON(text string) json.RawMessage {
	b, _ := json.Marshal(map[string]string{"question_text": text})
	return b
}

func TestGenerate_Verified(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionJSON("What is 6 + 3?"),
		Usage:   llm.Usage{InputTokens: 40, OutputTokens: 12},
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), additionInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "What is 6 + 3?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.Answer != "9" {
		t.Errorf("expected verified answer 9, got %q", q.Answer)
	}
	if q.Topic != topicgraph.Addition {
		t.Errorf("expected addition topic, got %q", q.Topic)
	}
	if q.SolverUsed != "deterministic" {
		t.Errorf("expected deterministic solver, got %q", q.SolverUsed)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestGenerate_SendsPromptAndSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionJSON("What is 6 + 3?"),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), additionInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, "primary school math teacher") {
		t.Error("system prompt missing teacher role")
	}
	if !strings.Contains(req.Messages[0].Content, "Original question: What is 2 + 3?") {
		t.Error("user message missing original question")
	}
	if req.Schema == nil || req.Schema.Name != "similar-question" {
		t.Errorf("expected similar-question schema, got %+v", req.Schema)
	}
	if req.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", req.Temperature)
	}
}

func TestGenerate_RetriesOnStructuralFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionJSON("What is addition?")}, // no numbers
		llm.MockResponse{Content: questionJSON("What is 7 + 2?")},
	)
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), additionInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "9" {
		t.Errorf("expected answer 9, got %q", q.Answer)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 LLM calls, got %d", mock.CallCount())
	}
}

func TestGenerate_RetriesOnTopicDrift(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionJSON("What is 1/2 of 8?")}, // fractions, not addition
		llm.MockResponse{Content: questionJSON("What is 5 + 4?")},
	)
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), additionInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Topic != topicgraph.Addition {
		t.Errorf("expected addition, got %q", q.Topic)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 LLM calls, got %d", mock.CallCount())
	}
}

func TestGenerate_ExhaustsAttemptBudget(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: questionJSON("no numbers here")},
		llm.MockResponse{Content: questionJSON("still none")},
		llm.MockResponse{Content: questionJSON("none again")},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), additionInput())
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if !strings.Contains(err.Error(), "3 attempts") {
		t.Errorf("error should report the attempt budget, got %q", err.Error())
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 LLM calls, got %d", mock.CallCount())
	}
}

func TestGenerate_ProviderErrorNotRetried(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Content: questionJSON("What is 7 + 2?")},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), additionInput())
	if err == nil {
		t.Fatal("expected error")
	}
	// Transport retries belong to the llm retry middleware, not here.
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestGenerate_WordProblemVerifies(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionJSON("Rima has 4 pens and 3 pencils. How many altogether?"),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Original: "Tom has 2 apples and 3 oranges. How many altogether?",
		Topic:    topicgraph.Addition,
		Grade:    2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "7" {
		t.Errorf("expected verified answer 7, got %q", q.Answer)
	}
	if q.SolverUsed != "word_problem" {
		t.Errorf("expected word_problem solver, got %q", q.SolverUsed)
	}
}
