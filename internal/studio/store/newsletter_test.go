package store

import (
	"context"
	"errors"
	"testing"

	"momentum-studio/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterTrigger_SeedsNotesInput(t *testing.T) {
	client := newFakeClient()
	client.newsletter = &entity.GeneratedNewsletter{ID: 9, OutlineID: 4, EditorNotes: strPtr("Lead with the data.")}
	s := NewNewsletterStore(client, newTestLogger(t))

	s.Trigger(context.Background(), 4)

	state := s.State()
	require.NotNil(t, state.Newsletter)
	assert.Equal(t, "Lead with the data.", state.NotesInput)
	assert.False(t, state.IsTriggering)
	assert.Empty(t, state.TriggerErr)
}

func TestNewsletterTrigger_NoNotesSeedsEmptyInput(t *testing.T) {
	client := newFakeClient()
	client.newsletter = &entity.GeneratedNewsletter{ID: 9, OutlineID: 4}
	s := NewNewsletterStore(client, newTestLogger(t))
	s.SetNotesInput("stale input from a previous draft")

	s.Trigger(context.Background(), 4)

	assert.Empty(t, s.NotesInput())
}

func TestNewsletterTrigger_FailureRecordsError(t *testing.T) {
	client := newFakeClient()
	client.newsletterErr = errors.New("llm timeout")
	s := NewNewsletterStore(client, newTestLogger(t))

	s.Trigger(context.Background(), 4)

	state := s.State()
	assert.Nil(t, state.Newsletter)
	assert.Equal(t, "llm timeout", state.TriggerErr)
	assert.False(t, state.IsTriggering)
	assert.False(t, state.IsLoading)
}

func TestNewsletterSaveNotes_ReplacesRecordAndReseeds(t *testing.T) {
	client := newFakeClient()
	client.newsletter = &entity.GeneratedNewsletter{ID: 9, OutlineID: 4}
	s := NewNewsletterStore(client, newTestLogger(t))
	s.Trigger(context.Background(), 4)

	s.SetNotesInput("Make the intro punchier.")
	client.newsletter = &entity.GeneratedNewsletter{ID: 9, OutlineID: 4, EditorNotes: strPtr("Make the intro punchier.")}
	s.SaveNotes(context.Background(), 9)

	state := s.State()
	require.NotNil(t, state.Newsletter.EditorNotes)
	assert.Equal(t, "Make the intro punchier.", *state.Newsletter.EditorNotes)
	assert.Equal(t, "Make the intro punchier.", state.NotesInput)
	assert.Empty(t, state.SaveNotesErr)
}

func TestNewsletterSaveNotes_FailureKeepsRecordAndInput(t *testing.T) {
	client := newFakeClient()
	client.newsletter = &entity.GeneratedNewsletter{ID: 9, OutlineID: 4}
	s := NewNewsletterStore(client, newTestLogger(t))
	s.Trigger(context.Background(), 4)

	s.SetNotesInput("unsaved edits")
	client.saveNotesErr = errors.New("backend rejected notes")
	s.SaveNotes(context.Background(), 9)

	state := s.State()
	assert.Equal(t, "backend rejected notes", state.SaveNotesErr)
	assert.Equal(t, "unsaved edits", state.NotesInput)
	require.NotNil(t, state.Newsletter)
	assert.Nil(t, state.Newsletter.EditorNotes)
}

func TestNewsletterRegenerate_LeavesNotesInputUntouched(t *testing.T) {
	client := newFakeClient()
	client.newsletter = &entity.GeneratedNewsletter{ID: 9, OutlineID: 4, EditorNotes: strPtr("Lead with the data.")}
	s := NewNewsletterStore(client, newTestLogger(t))
	s.Trigger(context.Background(), 4)
	s.SetNotesInput("a draft note not yet saved")

	client.newsletter = &entity.GeneratedNewsletter{
		ID:              9,
		OutlineID:       4,
		EditorNotes:     strPtr("Lead with the data."),
		EditorNoteBlock: strPtr("Lead with the data."),
	}
	s.Regenerate(context.Background(), 9)

	state := s.State()
	assert.Equal(t, "a draft note not yet saved", state.NotesInput)
	require.NotNil(t, state.Newsletter.EditorNoteBlock)
	assert.Equal(t, "Lead with the data.", *state.Newsletter.EditorNoteBlock)
	assert.False(t, state.IsRegenerating)
}

func TestNewsletterClear_ResetsEverything(t *testing.T) {
	client := newFakeClient()
	client.newsletter = &entity.GeneratedNewsletter{ID: 9, OutlineID: 4, EditorNotes: strPtr("notes")}
	s := NewNewsletterStore(client, newTestLogger(t))
	s.Trigger(context.Background(), 4)

	s.Clear()

	state := s.State()
	assert.Nil(t, state.Newsletter)
	assert.Empty(t, state.NotesInput)
	assert.Empty(t, state.TriggerErr)
	assert.False(t, state.IsLoading)
}
