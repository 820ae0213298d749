// ABOUTME: Manager keeps one workflow store per project and restores from storage
// ABOUTME: Assigns project IDs and reloads the persisted projection on demand

package workflow

import (
	"context"
	"sync"

	"github.com/google/uuid"

	coreerrors "magicmuse-api/core/errors"
	"magicmuse-api/core/interfaces"
)

// Manager owns the live workflow stores, keyed by project ID. Stores evicted
// from memory are rebuilt from the persisted projection; everything outside
// the whitelist comes back at slice defaults.
type Manager struct {
	deps   interfaces.Dependencies
	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager creates a workflow manager.
func NewManager(deps interfaces.Dependencies) (*Manager, error) {
	// Fail fast if the whitelist has drifted from the state shape.
	if err := validateWhitelist(); err != nil {
		return nil, err
	}
	return &Manager{
		deps:   deps,
		stores: make(map[string]*Store),
	}, nil
}

// Create builds a new workflow, assigns its project ID and seeds it from the
// optional partial state.
func (m *Manager) Create(ctx context.Context, partial PartialState) (*Store, error) {
	store, err := NewStore(m.deps)
	if err != nil {
		return nil, err
	}
	if err := store.Initialize(ctx, partial); err != nil {
		return nil, err
	}
	projectID := uuid.New().String()
	if err := store.AssignProjectID(ctx, projectID); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.stores[projectID] = store
	m.mu.Unlock()
	return store, nil
}

// Get returns the live store for projectID, restoring it from durable
// storage when it is not in memory.
func (m *Manager) Get(ctx context.Context, projectID string) (*Store, error) {
	m.mu.Lock()
	if store, ok := m.stores[projectID]; ok {
		m.mu.Unlock()
		return store, nil
	}
	m.mu.Unlock()

	if m.deps.Storage == nil {
		return nil, &coreerrors.NotFoundError{Resource: "workflow", ID: projectID}
	}
	state, err := LoadProjection(ctx, m.deps.Storage, projectID)
	if err != nil {
		return nil, &coreerrors.NotFoundError{Resource: "workflow", ID: projectID}
	}

	store, err := NewStore(m.deps)
	if err != nil {
		return nil, err
	}
	store.mu.Lock()
	store.state = state
	store.mu.Unlock()

	m.mu.Lock()
	// Another request may have restored it first; keep whichever won.
	if existing, ok := m.stores[projectID]; ok {
		m.mu.Unlock()
		return existing, nil
	}
	m.stores[projectID] = store
	m.mu.Unlock()
	return store, nil
}

// Delete removes a workflow from memory and durable storage.
func (m *Manager) Delete(ctx context.Context, projectID string) error {
	m.mu.Lock()
	delete(m.stores, projectID)
	m.mu.Unlock()
	if m.deps.Storage != nil {
		return m.deps.Storage.Delete(ctx, StorageKey(projectID))
	}
	return nil
}
