// ABOUTME: Workflow store composer presenting one state surface over the slices
// ABOUTME: Owns subscriber notification and the persisted projection of state

package workflow

import (
	"context"
	"sync"

	"magicmuse-api/core/domain"
	"magicmuse-api/core/interfaces"
)

// Store is the composed workflow state container for a single project. All
// reads go through State and all writes through the named setters; setters
// mutate only their owning slice, replace the slice value immutably, and
// trigger exactly one subscriber notification plus one persistence write.
type Store struct {
	mu    sync.Mutex
	state domain.WorkflowState
	deps  interfaces.Dependencies

	subscribers map[int]func(domain.WorkflowState)
	nextSubID   int
}

// PartialState seeds a store with a subset of slices. Nil slices are left at
// their defaults.
type PartialState struct {
	Setup    *domain.SetupState
	Audience *domain.AudienceState
	Design   *domain.DesignState
	Blog     *domain.BlogState
}

// NewStore creates a workflow store with defaulted slices. The persistence
// whitelist schema is validated against the actual state shape; drift between
// the two is a construction error, not a silent omission.
func NewStore(deps interfaces.Dependencies) (*Store, error) {
	if err := validateWhitelist(); err != nil {
		return nil, err
	}
	return &Store{
		state:       domain.DefaultWorkflowState(),
		deps:        deps,
		subscribers: make(map[int]func(domain.WorkflowState)),
	}, nil
}

// State returns a snapshot of the composed state.
func (s *Store) State() domain.WorkflowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called synchronously after every mutation.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(domain.WorkflowState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Initialize overwrites only the provided slices, leaving others untouched.
// Used for resuming or seeding a project.
func (s *Store) Initialize(ctx context.Context, partial PartialState) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		if partial.Setup != nil {
			st.Setup = *partial.Setup
		}
		if partial.Audience != nil {
			st.Audience = *partial.Audience
		}
		if partial.Design != nil {
			if err := partial.Design.Validate(); err != nil {
				return err
			}
			st.Design = *partial.Design
		}
		if partial.Blog != nil {
			st.Blog = *partial.Blog
		}
		return nil
	})
}

// Reset returns every transient slice to its defaults, keeping the persisted
// identity and setup/design choices. Generated slide contents are dropped.
func (s *Store) Reset(ctx context.Context) error {
	return s.update(ctx, func(st *domain.WorkflowState) error {
		// The run sequence survives a reset so callbacks from a pre-reset
		// run can never match a post-reset run's sequence.
		seq := st.Generation.RunSequence
		st.Generation = domain.DefaultGenerationState()
		st.Generation.RunSequence = seq
		st.QA = domain.DefaultQAState()
		st.Delivery = domain.DefaultDeliveryState()
		return nil
	})
}

// update applies fn to a copy of the state under the lock, then swaps the
// copy in, persists the whitelisted projection and notifies subscribers.
// A single setter call produces a single notification.
func (s *Store) update(ctx context.Context, fn func(*domain.WorkflowState) error) error {
	s.mu.Lock()
	next := s.state
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	subs := make([]func(domain.WorkflowState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	// Persistence failures are logged, not surfaced; the in-memory state is
	// already the source of truth for the session.
	if err := s.persist(ctx, next); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Failed to persist workflow state", map[string]interface{}{
			"projectId": next.Setup.ProjectID,
			"error":     err.Error(),
		})
	}

	for _, fn := range subs {
		fn(next)
	}
	return nil
}
