// Package llm abstracts the hosted language-model providers the tutor can
// use for problem generation, hint enrichment, and misconception analysis.
// Everything degrades gracefully when no provider is configured.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured JSON from a prompt. Implementations wrap
// one hosted API each; decorators add retry and logging.
type Provider interface {
	// Generate sends the request and returns the model output. When the
	// request carries a Schema the content is JSON validated against it;
	// otherwise Content is the raw text wrapped as a JSON string.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. The tutor's calls are
	// single-turn, so this is normally one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and guarantees Content conforms to it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Schema names and describes the JSON shape a response must take.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case, e.g.
	// "physics-problem".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model output for one request.
type Response struct {
	// Content is validated JSON when the request had a Schema, or the
	// raw text wrapped as a JSON string otherwise.
	Content json.RawMessage

	// Usage is the token count the provider reported.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage is per-request token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
