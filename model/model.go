package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/roundtable-ai/roundtable/core"
)

// Role names for chat messages. Providers map these onto their vendor wire
// formats.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request captures the normalized completion input: which backend model to
// call, the message pair (or list) to send, and the sampling parameters of
// the speaking participant.
type Request struct {
	Model    string              `json:"model"`
	Messages []Message           `json:"messages"`
	Sampling core.SamplingConfig `json:"sampling"`
}

// TokenUsage captures token usage statistics for a single completion.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the final result of a completion call. Text may be empty; the
// orchestration layer is content-agnostic and counts an empty completion as a
// valid turn.
type Response struct {
	Text         string      `json:"text"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a provider implementation.
type Info struct {
	Provider string `json:"provider"` // "openai", "anthropic", "ollama", "mock", ...
	BaseURL  string `json:"base_url,omitempty"`
}

// Provider is the single capability the conversation engine consumes: given a
// model id, a message list and a sampling configuration, return a completion
// or fail. The call blocks until the backend answers; it is the sole
// suspension point of a turn.
type Provider interface {
	Complete(ctx context.Context, req Request) (*Response, error)

	// Info returns metadata about the provider implementation.
	Info() Info
}

// MockProvider is a lightweight in-memory Provider useful for tests and
// examples. Responses are served from a script in call order; specific calls
// can be made to fail. All received requests are captured for inspection.
type MockProvider struct {
	mu       sync.Mutex
	script   []string
	failAt   map[int]error
	requests []Request
	calls    int
}

// NewMockProvider constructs an empty MockProvider. With no script, each call
// answers with a deterministic placeholder.
func NewMockProvider() *MockProvider {
	return &MockProvider{failAt: map[int]error{}}
}

// Script queues responses returned in call order. Once the script is
// exhausted, placeholder responses resume.
func (m *MockProvider) Script(responses ...string) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, responses...)
	return m
}

// FailAt makes the n-th call (0-based) return err instead of a response.
func (m *MockProvider) FailAt(n int, err error) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAt[n] = err
	return m
}

// Requests returns a copy of every request received so far, in call order.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Complete implements Provider.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	call := m.calls
	m.calls++
	m.requests = append(m.requests, req)

	if err, ok := m.failAt[call]; ok {
		return nil, err
	}

	text := fmt.Sprintf("mock response %d from %s", call, req.Model)
	if call < len(m.script) {
		text = m.script[call]
	}
	return &Response{
		Text:         text,
		FinishReason: "stop",
		Usage:        &TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}

// Info implements Provider.
func (m *MockProvider) Info() Info { return Info{Provider: "mock"} }
