package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between mymath and any LLM backend. The
// similar-question generator only ever talks to this interface; which
// vendor sits behind it is decided once, by the factory.
type Provider interface {
	// Generate sends one prompt and returns the model's output. When the
	// request carries a Schema, the provider asks for structured output
	// and re-validates the JSON locally before returning it, so Content
	// is guaranteed to conform.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the resolved model identifier in use.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Question generation is single-turn:
	// one user message carrying the original question and its topic.
	Messages []Message

	// Schema, when set, constrains the response to this JSON shape via
	// the provider's native structured-output mechanism. When nil the
	// response Content is the raw text as a json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in 0.0 - 1.0; zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON shape expected back from the model.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case, e.g.
	// "similar-question".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is the generated output. Schema-constrained requests get
	// the validated JSON object; unconstrained requests get the raw text
	// wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request, as reported
	// by the API (may differ from the requested alias).
	Model string

	// StopReason is normalized across vendors to "end", "max_tokens" or
	// "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
