package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// openaiStub returns a provider wired to a local server that answers every
// chat completion call with the given status and body.
func openaiStub(t *testing.T, status int, body map[string]any) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  "gpt-4o-mini",
	}
}

func openaiCompletion(content, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     33,
			"completion_tokens": 21,
			"total_tokens":      54,
		},
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	problem := `{"statement":"A 1200 kg car accelerates at 2.5 m/s^2. Find the net force.","answer":3000}`
	p := openaiStub(t, http.StatusOK, openaiCompletion(problem, "stop"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You write Newton's second law practice problems.",
		Messages:  []Message{{Role: RoleUser, Content: "One problem, please."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != problem {
		t.Errorf("content = %s, want %s", resp.Content, problem)
	}
	if resp.Usage.InputTokens != 33 || resp.Usage.OutputTokens != 21 || resp.Usage.TotalTokens != 54 {
		t.Errorf("usage = %+v, want 33 / 21 / 54", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, "end")
	}
}

func TestOpenAIProvider_TruncatedStopReason(t *testing.T) {
	p := openaiStub(t, http.StatusOK, openaiCompletion("partial", "length"))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "go"}},
		MaxTokens: 5,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, "max_tokens")
	}
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	p := openaiStub(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"type": "tokens", "message": "slow down", "code": "rate_limit_exceeded"},
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "go"}},
		MaxTokens: 100,
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T (%v), want *ErrRateLimit", err, err)
	}
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	p := openaiStub(t, http.StatusInternalServerError, map[string]any{
		"error": map[string]any{"type": "server_error", "message": "boom"},
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "go"}},
		MaxTokens: 100,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T (%v), want *ErrProviderUnavailable", err, err)
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	body := openaiCompletion("", "stop")
	body["choices"] = []map[string]any{}
	p := openaiStub(t, http.StatusOK, body)

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "go"}},
		MaxTokens: 100,
	})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %T (%v), want *ErrInvalidResponse", err, err)
	}
}

func TestOpenAIProvider_ModelID(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
	if got := p.ModelID(); got != "gpt-4o-mini" {
		t.Errorf("ModelID() = %q, want %q", got, "gpt-4o-mini")
	}
}

func TestNewOpenAIProvider_BaseURLOverride(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	if got := p.ModelID(); got != "gpt-4o" {
		t.Errorf("ModelID() = %q, want %q", got, "gpt-4o")
	}
}

func TestOpenAIMessages_SystemPromptLeads(t *testing.T) {
	msgs := openaiMessages(Request{
		System: "grade carefully",
		Messages: []Message{
			{Role: RoleUser, Content: "my answer is 12 N"},
			{Role: RoleAssistant, Content: "correct"},
		},
	})

	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != "grade carefully" {
		t.Errorf("leading message = %+v, want the system prompt", msgs[0])
	}
	if msgs[1].Role != openai.ChatMessageRoleUser {
		t.Errorf("msgs[1].Role = %q, want user", msgs[1].Role)
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("msgs[2].Role = %q, want assistant", msgs[2].Role)
	}
}
