package store

import (
	"context"
	"sync"
	"time"

	"momentum-studio/internal/entity"
	"momentum-studio/internal/studio/backend"
	"momentum-studio/pkg/logger"
	"momentum-studio/pkg/utils"
)

// JobTrackingState is a point-in-time snapshot of the job tracking store.
type JobTrackingState struct {
	Entries   []entity.JobTrackingEntry
	IsLoading bool
	Err       string
}

// JobTrackingStore holds the Movers & Shakers feed, filtered at fetch time
// to entries whose appointment date falls within the recency window.
type JobTrackingStore struct {
	client backend.Client
	log    *logger.Logger
	now    func() time.Time

	mu        sync.Mutex
	entries   []entity.JobTrackingEntry
	isLoading bool
	err       string
}

// NewJobTrackingStore creates a job tracking store.
func NewJobTrackingStore(client backend.Client, log *logger.Logger) *JobTrackingStore {
	return &JobTrackingStore{client: client, log: log, now: utils.TimeNowUTC}
}

// State returns a snapshot of the current store state.
func (s *JobTrackingStore) State() JobTrackingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return JobTrackingState{
		Entries:   append([]entity.JobTrackingEntry(nil), s.entries...),
		IsLoading: s.isLoading,
		Err:       s.err,
	}
}

// Fetch loads the feed and keeps only entries with a parseable appointment
// date no older than daysOld days. Entries without a date are skipped.
func (s *JobTrackingStore) Fetch(ctx context.Context, daysOld int) {
	s.mu.Lock()
	s.isLoading = true
	s.err = ""
	s.mu.Unlock()

	entries, err := s.client.JobTracking(ctx, daysOld)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	if err != nil {
		s.log.Error("Failed to fetch job tracking entries", logger.ErrorField(err))
		s.err = err.Error()
		return
	}

	cutoff := s.now().AddDate(0, 0, -daysOld)
	filtered := make([]entity.JobTrackingEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.AppointmentDate == nil {
			continue
		}
		appointed, parseErr := utils.ParseBackendDate(*entry.AppointmentDate)
		if parseErr != nil {
			continue
		}
		if !appointed.Before(cutoff) {
			filtered = append(filtered, entry)
		}
	}
	s.entries = filtered
}

// Reset returns the store to its zero state.
func (s *JobTrackingStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.isLoading = false
	s.err = ""
}
