// ABOUTME: Test doubles for the workflow package tests
// ABOUTME: Map-backed storage and a capturing logger

package workflow

import (
	"context"
	"errors"
	"sync"

	"magicmuse-api/core/interfaces"
)

type mockStorage struct {
	mu   sync.Mutex
	data map[string][]byte

	setErr error
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
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (l *mockLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func testDeps(storage interfaces.KVStorage) interfaces.Dependencies {
	return interfaces.Dependencies{
		Storage: storage,
		Logger:  &mockLogger{},
	}
}
