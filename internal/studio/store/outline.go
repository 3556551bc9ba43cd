package store

import (
	"context"
	"sync"

	"momentum-studio/internal/entity"
	"momentum-studio/internal/studio/backend"
	"momentum-studio/pkg/logger"
)

// OutlineState is a point-in-time snapshot of the outline store.
type OutlineState struct {
	Outline   *entity.Outline
	IsLoading bool
	Err       string
}

// OutlineStore manages the single current article outline. Regenerating
// replaces it wholesale; an outline is only meaningful for the topic that
// produced it.
type OutlineStore struct {
	client backend.Client
	log    *logger.Logger

	mu        sync.Mutex
	outline   *entity.Outline
	isLoading bool
	err       string
}

// NewOutlineStore creates an outline store.
func NewOutlineStore(client backend.Client, log *logger.Logger) *OutlineStore {
	return &OutlineStore{client: client, log: log}
}

// State returns a snapshot of the current store state.
func (s *OutlineStore) State() OutlineState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return OutlineState{Outline: s.outline, IsLoading: s.isLoading, Err: s.err}
}

// Outline returns the current outline, nil when none is loaded.
func (s *OutlineStore) Outline() *entity.Outline {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outline
}

// Generate runs the two-step outline sequence: trigger generation for the
// topic, then fetch the full outline by the returned id. Both steps must
// succeed for the store to resolve to a populated outline; failure at either
// step clears it and records the error. The returned flag reports success.
func (s *OutlineStore) Generate(ctx context.Context, topicID int64) bool {
	if topicID <= 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.isLoading = false
		s.err = "Invalid topic ID for outline generation."
		return false
	}

	s.mu.Lock()
	s.isLoading = true
	s.err = ""
	s.outline = nil
	s.mu.Unlock()

	outlineID, err := s.client.GenerateOutline(ctx, topicID)
	if err != nil {
		s.fail("Failed to trigger outline generation", err)
		return false
	}

	outline, err := s.client.GetOutline(ctx, outlineID)
	if err != nil {
		s.fail("Failed to fetch generated outline", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.outline = outline
	s.isLoading = false
	s.err = ""
	return true
}

// Clear resets the store to its empty state unconditionally.
func (s *OutlineStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outline = nil
	s.isLoading = false
	s.err = ""
}

// Reset is an alias for Clear, for symmetry with the other stores.
func (s *OutlineStore) Reset() { s.Clear() }

func (s *OutlineStore) fail(msg string, err error) {
	s.log.Error(msg, logger.ErrorField(err))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outline = nil
	s.isLoading = false
	s.err = err.Error()
}
