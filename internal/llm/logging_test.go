package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kaisuddinahmed/mymath/internal/store"
)

// captureRepo records appended LLM events. The embedded interface covers
// the methods logging never calls.
type captureRepo struct {
	store.EventRepo
	events    []store.LLMRequestEventData
	appendErr error
}

func (c *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if c.appendErr != nil {
		return c.appendErr
	}
	c.events = append(c.events, data)
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"question":"What is 3 + 4?"}`),
			Usage:   Usage{InputTokens: 20, OutputTokens: 10, TotalTokens: 30},
		},
	)
	repo := &captureRepo{}
	p := WithLogging(mock, repo, "mock")

	ctx := WithPurpose(context.Background(), "similar-question")
	ctx = WithRequestID(ctx, "req-123")

	_, err := p.Generate(ctx, Request{
		System:   "You are a primary school math teacher.",
		Messages: []Message{{Role: RoleUser, Content: "Original question: What is 2 + 3?"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.RequestID != "req-123" {
		t.Errorf("request ID = %q, want %q", ev.RequestID, "req-123")
	}
	if ev.Provider != "mock" {
		t.Errorf("provider = %q, want %q", ev.Provider, "mock")
	}
	if ev.Purpose != "similar-question" {
		t.Errorf("purpose = %q, want %q", ev.Purpose, "similar-question")
	}
	if ev.InputTokens != 20 || ev.OutputTokens != 10 {
		t.Errorf("tokens = %d/%d, want 20/10", ev.InputTokens, ev.OutputTokens)
	}
	if !ev.Success {
		t.Error("expected success = true")
	}
	if !strings.Contains(ev.RequestBody, "Original question") {
		t.Errorf("request body should contain the user message, got %q", ev.RequestBody)
	}
	if !strings.Contains(ev.ResponseBody, "What is 3 + 4?") {
		t.Errorf("response body should contain the generated content, got %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &captureRepo{}
	p := WithLogging(mock, repo, "anthropic")

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected success = false")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected non-empty error message")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want %q when not set", ev.Purpose, "unknown")
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	repo := &captureRepo{appendErr: errors.New("db locked")}
	p := WithLogging(mock, repo, "mock")

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("logging failure must not fail the request: %v", err)
	}
	if resp == nil {
		t.Fatal("expected response despite logging failure")
	}
}
