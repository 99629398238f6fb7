package llm

import (
	"context"
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MYMATH_LLM_PROVIDER",
		"MYMATH_ANTHROPIC_API_KEY", "MYMATH_OPENAI_API_KEY",
		"MYMATH_GEMINI_API_KEY", "MYMATH_OPENROUTER_API_KEY",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY",
		"GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q, want %q", p.ModelID(), "mock")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "carrier-pigeon"}, nil)
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProviderFromEnv_ExplicitMock(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("MYMATH_LLM_PROVIDER", "mock")

	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q, want %q", p.ModelID(), "mock")
	}
}

func TestNewProviderFromEnv_NothingConfigured(t *testing.T) {
	clearProviderEnv(t)

	_, err := NewProviderFromEnv(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error when no provider is configured")
	}
}

func TestNewProviderFromEnv_ExplicitProviderWins(t *testing.T) {
	clearProviderEnv(t)
	// A bare Gemini key is present, but the explicit selection must win.
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("MYMATH_LLM_PROVIDER", "mock")

	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q, want %q", p.ModelID(), "mock")
	}
}
