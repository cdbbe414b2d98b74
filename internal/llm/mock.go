package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply for the mock provider. Err, when set,
// is returned instead of a response.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays canned responses in FIFO order and records every
// request it sees. Deterministic, safe for concurrent use.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse

	// Calls holds each request in arrival order. Tests inspect it to
	// assert prompts, schemas and parameters.
	Calls []Request
}

// NewMockProvider returns a mock preloaded with the given responses. An
// empty queue makes Generate fail with ErrProviderUnavailable.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// AddResponse appends one more canned response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount reports how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }
