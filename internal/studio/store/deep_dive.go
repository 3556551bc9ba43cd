package store

import (
	"context"
	"sync"

	"momentum-studio/internal/entity"
	"momentum-studio/internal/studio/backend"
	"momentum-studio/pkg/logger"
)

// DeepDiveState is a point-in-time snapshot of the deep-dive store.
type DeepDiveState struct {
	Set       *entity.DeepDiveSet
	IsLoading bool
	Err       string
}

// DeepDiveStore holds the read-only deep dives keyed by the selected topic.
// It is fetched fresh whenever the selection changes and must be cleared
// when no topic is selected.
type DeepDiveStore struct {
	client backend.Client
	log    *logger.Logger

	mu        sync.Mutex
	set       *entity.DeepDiveSet
	isLoading bool
	err       string
}

// NewDeepDiveStore creates a deep-dive store.
func NewDeepDiveStore(client backend.Client, log *logger.Logger) *DeepDiveStore {
	return &DeepDiveStore{client: client, log: log}
}

// State returns a snapshot of the current store state.
func (s *DeepDiveStore) State() DeepDiveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeepDiveState{Set: s.set, IsLoading: s.isLoading, Err: s.err}
}

// Fetch loads the deep dives (with source URLs) for one topic.
func (s *DeepDiveStore) Fetch(ctx context.Context, topicID int64) {
	if topicID <= 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.err = "A topic ID is required to fetch deep dives."
		s.isLoading = false
		return
	}

	s.mu.Lock()
	s.isLoading = true
	s.err = ""
	s.set = nil
	s.mu.Unlock()

	set, err := s.client.DeepDivesWithURLs(ctx, topicID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if err != nil {
		s.log.Error("Failed to fetch deep dives", logger.ErrorField(err), logger.Field("topic_id", topicID))
		s.err = err.Error()
		s.set = nil
		return
	}
	s.set = set
}

// Clear drops the current deep dives.
func (s *DeepDiveStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = nil
	s.isLoading = false
	s.err = ""
}

// Reset is an alias for Clear, for symmetry with the other stores.
func (s *DeepDiveStore) Reset() { s.Clear() }
