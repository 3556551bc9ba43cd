// Package store holds the resource stores backing the newsletter workflow.
// Each store owns one slice of state with a data/loading/error triad and
// action methods that perform exactly one backend round trip. Locks guard
// state only, never the network call, so concurrent actions on one store
// resolve last-writer-wins exactly like user-paced UI interactions.
package store

import (
	"context"
	"sync"

	"momentum-studio/internal/entity"
	"momentum-studio/internal/studio/backend"
	"momentum-studio/pkg/logger"
)

// TopicState is a point-in-time snapshot of the topic store.
type TopicState struct {
	Topics          []entity.MetaSuggestion
	SelectedTopicID *int64
	IsLoading       bool
	IsGenerating    bool
	Err             string
	IsChoosing      bool
	ChooseErr       string
}

// TopicStore manages the topic list and the local selection. The selection
// is client-side UI state, distinct from the persisted is_chosen flag.
type TopicStore struct {
	client backend.Client
	log    *logger.Logger

	mu       sync.Mutex
	topics   []entity.MetaSuggestion
	selected *int64

	isLoading    bool
	isGenerating bool
	err          string
	isChoosing   bool
	chooseErr    string
}

// NewTopicStore creates a topic store.
func NewTopicStore(client backend.Client, log *logger.Logger) *TopicStore {
	return &TopicStore{client: client, log: log}
}

// State returns a snapshot of the current store state.
func (s *TopicStore) State() TopicState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TopicState{
		Topics:          append([]entity.MetaSuggestion(nil), s.topics...),
		SelectedTopicID: copyID(s.selected),
		IsLoading:       s.isLoading,
		IsGenerating:    s.isGenerating,
		Err:             s.err,
		IsChoosing:      s.isChoosing,
		ChooseErr:       s.chooseErr,
	}
}

// SelectedTopicID returns the current local selection, nil when none.
func (s *TopicStore) SelectedTopicID() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyID(s.selected)
}

// SelectedTopic returns the selected topic entry, nil when none is selected
// or the selection no longer appears in the list.
func (s *TopicStore) SelectedTopic() *entity.MetaSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	for i := range s.topics {
		if s.topics[i].ID == *s.selected {
			topic := s.topics[i]
			return &topic
		}
	}
	return nil
}

// Fetch replaces the topic list wholesale from the backend.
func (s *TopicStore) Fetch(ctx context.Context, limit int) {
	s.mu.Lock()
	s.isLoading = true
	s.err = ""
	s.mu.Unlock()

	topics, err := s.client.ListTopics(ctx, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if err != nil {
		s.log.Error("Failed to fetch topics", logger.ErrorField(err))
		s.err = err.Error()
		return
	}
	s.topics = topics
}

// Generate triggers backend topic generation, then refetches the full list.
// It never merges; the refetch is authoritative.
func (s *TopicStore) Generate(ctx context.Context, customContext string, limit int) {
	s.mu.Lock()
	s.isGenerating = true
	s.err = ""
	s.mu.Unlock()

	err := s.client.GenerateTopics(ctx, customContext)
	if err == nil {
		s.Fetch(ctx, limit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isGenerating = false
	if err != nil {
		s.log.Error("Failed to trigger topic generation", logger.ErrorField(err))
		s.err = err.Error()
	}
}

// Select changes the local topic selection. A nil id clears the selection
// without any network call. A non-nil id issues the choose mutation upstream
// and, on success, patches only that entry's chosen flag locally using the
// authoritative chosen_at echoed by the backend. On failure the selection
// rolls back to nil.
func (s *TopicStore) Select(ctx context.Context, id *int64) {
	if id == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.selected = nil
		s.isChoosing = false
		s.chooseErr = ""
		return
	}

	s.mu.Lock()
	s.isChoosing = true
	s.chooseErr = ""
	s.mu.Unlock()

	chosen, err := s.client.ChooseTopic(ctx, *id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isChoosing = false
	if err != nil {
		s.log.Error("Failed to choose topic", logger.ErrorField(err), logger.Field("topic_id", *id))
		s.chooseErr = err.Error()
		s.selected = nil
		return
	}
	s.selected = copyID(id)
	for i := range s.topics {
		if s.topics[i].ID == *id {
			s.topics[i].IsChosen = true
			s.topics[i].ChosenAt = chosen.ChosenAt
		}
	}
}

// Reset returns the store to its zero state.
func (s *TopicStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = nil
	s.selected = nil
	s.isLoading = false
	s.isGenerating = false
	s.err = ""
	s.isChoosing = false
	s.chooseErr = ""
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
