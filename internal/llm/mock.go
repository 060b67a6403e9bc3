package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockJSON scripts a successful reply carrying the given JSON body,
// e.g. a bundle for a generator test or a verdict for a reviewer test.
func MockJSON(body string) MockResponse {
	return MockResponse{Content: json.RawMessage(body)}
}

// MockError scripts a failing reply.
func MockError(err error) MockResponse {
	return MockResponse{Err: err}
}

// MockProvider replays scripted responses in order and records every
// request it sees along with its purpose tag, so tests can assert on
// prompts and on which role made which call. An exhausted script yields
// ErrProviderUnavailable.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockResponse
	Calls    []Request
	Purposes []Purpose
}

// NewMockProvider creates a MockProvider with the given script.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	m.Purposes = append(m.Purposes, PurposeFrom(ctx))

	if len(m.script) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.script[0]
	m.script = m.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      m.ModelID(),
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse appends to the script after construction.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
