package store

import (
	"context"
	"sync"

	"momentum-studio/internal/entity"
	"momentum-studio/internal/studio/backend"
	"momentum-studio/pkg/logger"
)

// EventsState is a point-in-time snapshot of the events store.
type EventsState struct {
	Events    []entity.UpcomingEvent
	IsLoading bool
	Err       string
}

// EventsStore holds the read-only upcoming industry events feed.
type EventsStore struct {
	client backend.Client
	log    *logger.Logger

	mu        sync.Mutex
	events    []entity.UpcomingEvent
	isLoading bool
	err       string
}

// NewEventsStore creates an events store.
func NewEventsStore(client backend.Client, log *logger.Logger) *EventsStore {
	return &EventsStore{client: client, log: log}
}

// State returns a snapshot of the current store state.
func (s *EventsStore) State() EventsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return EventsState{
		Events:    append([]entity.UpcomingEvent(nil), s.events...),
		IsLoading: s.isLoading,
		Err:       s.err,
	}
}

// Fetch loads the upcoming events feed.
func (s *EventsStore) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.isLoading = true
	s.err = ""
	s.mu.Unlock()

	events, err := s.client.UpcomingEvents(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if err != nil {
		s.log.Error("Failed to fetch upcoming events", logger.ErrorField(err))
		s.err = err.Error()
		return
	}
	s.events = events
}

// Reset returns the store to its zero state.
func (s *EventsStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
	s.isLoading = false
	s.err = ""
}
