package store

import (
	"context"
	"sync"

	"momentum-studio/internal/entity"
	"momentum-studio/internal/studio/backend"
	"momentum-studio/pkg/logger"
)

// NewsletterState is a point-in-time snapshot of the newsletter store.
type NewsletterState struct {
	Newsletter     *entity.GeneratedNewsletter
	IsLoading      bool
	Err            string
	IsTriggering   bool
	TriggerErr     string
	NotesInput     string
	IsSavingNotes  bool
	SaveNotesErr   string
	IsRegenerating bool
	RegenerateErr  string
}

// NewsletterStore manages the generated newsletter and the editor-notes
// input. The input field and the persisted editor_notes are independent:
// saving persists the input, regeneration consumes the persisted value and
// must never rewrite the input.
type NewsletterStore struct {
	client backend.Client
	log    *logger.Logger

	mu         sync.Mutex
	newsletter *entity.GeneratedNewsletter
	notesInput string

	isLoading      bool
	err            string
	isTriggering   bool
	triggerErr     string
	isSavingNotes  bool
	saveNotesErr   string
	isRegenerating bool
	regenerateErr  string
}

// NewNewsletterStore creates a newsletter store.
func NewNewsletterStore(client backend.Client, log *logger.Logger) *NewsletterStore {
	return &NewsletterStore{client: client, log: log}
}

// State returns a snapshot of the current store state.
func (s *NewsletterStore) State() NewsletterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewsletterState{
		Newsletter:     s.newsletter,
		IsLoading:      s.isLoading,
		Err:            s.err,
		IsTriggering:   s.isTriggering,
		TriggerErr:     s.triggerErr,
		NotesInput:     s.notesInput,
		IsSavingNotes:  s.isSavingNotes,
		SaveNotesErr:   s.saveNotesErr,
		IsRegenerating: s.isRegenerating,
		RegenerateErr:  s.regenerateErr,
	}
}

// Newsletter returns the current generated newsletter, nil when none exists.
func (s *NewsletterStore) Newsletter() *entity.GeneratedNewsletter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newsletter
}

// NotesInput returns the current editor-notes input value.
func (s *NewsletterStore) NotesInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notesInput
}

// SetNotesInput replaces the editor-notes input value.
func (s *NewsletterStore) SetNotesInput(notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notesInput = notes
}

// Trigger generates a newsletter from the given outline and stores the full
// result, seeding the notes input from the persisted editor_notes.
func (s *NewsletterStore) Trigger(ctx context.Context, outlineID int64) {
	s.mu.Lock()
	s.isTriggering = true
	s.triggerErr = ""
	s.newsletter = nil
	s.isLoading = true
	s.mu.Unlock()

	newsletter, err := s.client.GenerateNewsletter(ctx, outlineID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isTriggering = false
	s.isLoading = false
	if err != nil {
		s.log.Error("Failed to trigger newsletter generation", logger.ErrorField(err), logger.Field("outline_id", outlineID))
		s.triggerErr = err.Error()
		return
	}
	s.newsletter = newsletter
	s.notesInput = notesOrEmpty(newsletter)
}

// SaveNotes persists the current notes input and replaces the whole record
// with the server's response, re-seeding the input from it.
func (s *NewsletterStore) SaveNotes(ctx context.Context, newsletterID int64) {
	s.mu.Lock()
	notes := s.notesInput
	s.isSavingNotes = true
	s.saveNotesErr = ""
	s.mu.Unlock()

	updated, err := s.client.SaveEditorNotes(ctx, newsletterID, notes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSavingNotes = false
	if err != nil {
		s.log.Error("Failed to save editor notes", logger.ErrorField(err), logger.Field("newsletter_id", newsletterID))
		s.saveNotesErr = err.Error()
		return
	}
	s.newsletter = updated
	s.notesInput = notesOrEmpty(updated)
}

// Regenerate replaces the newsletter with a re-drafted version built from the
// persisted editor notes. The notes input is left untouched; only generated
// content and the note-derived display block change.
func (s *NewsletterStore) Regenerate(ctx context.Context, newsletterID int64) {
	s.mu.Lock()
	s.isRegenerating = true
	s.regenerateErr = ""
	s.mu.Unlock()

	regenerated, err := s.client.RegenerateNewsletter(ctx, newsletterID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isRegenerating = false
	if err != nil {
		s.log.Error("Failed to regenerate newsletter", logger.ErrorField(err), logger.Field("newsletter_id", newsletterID))
		s.regenerateErr = err.Error()
		return
	}
	s.newsletter = regenerated
}

// Clear resets all newsletter substate including the notes input.
func (s *NewsletterStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newsletter = nil
	s.notesInput = ""
	s.isLoading = false
	s.err = ""
	s.isTriggering = false
	s.triggerErr = ""
	s.isSavingNotes = false
	s.saveNotesErr = ""
	s.isRegenerating = false
	s.regenerateErr = ""
}

// Reset is an alias for Clear, for symmetry with the other stores.
func (s *NewsletterStore) Reset() { s.Clear() }

func notesOrEmpty(n *entity.GeneratedNewsletter) string {
	if n == nil || n.EditorNotes == nil {
		return ""
	}
	return *n.EditorNotes
}
