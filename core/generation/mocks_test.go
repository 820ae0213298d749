// ABOUTME: Test doubles for the generation service tests
// ABOUTME: Scripted LLM client and map-backed storage

package generation

import (
	"context"
	"errors"
	"sync"

	"magicmuse-api/core/interfaces"
)

// mockLLM returns scripted responses in call order. Optional hooks run before
// each completion, letting a test interleave store mutations with the run.
type mockLLM struct {
	mu        sync.Mutex
	responses []string
	errAt     int // 1-based call index that fails; 0 means never
	calls     int
	onCall    func(call int)
}

func (m *mockLLM) Complete(ctx context.Context, req interfaces.ChatRequest) (*interfaces.ChatResponse, error) {
	m.mu.Lock()
	m.calls++
	call := m.calls
	hook := m.onCall
	m.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if m.errAt != 0 && call == m.errAt {
		return nil, errors.New("provider unavailable")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	content := "generated content"
	if len(m.responses) > 0 {
		content = m.responses[0]
		if len(m.responses) > 1 {
			m.responses = m.responses[1:]
		}
	}
	return &interfaces.ChatResponse{
		Content: content,
		Usage:   interfaces.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
	}, nil
}

func (m *mockLLM) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMockStorage() *mockStorage {
	return &mockStorage{data: make(map[string][]byte)}
}

func (m *mockStorage) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return append([]byte(nil), value...), nil
}

func (m *mockStorage) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
