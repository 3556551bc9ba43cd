package dto

import (
	"momentum-studio/internal/entity"
)

// GenerateTopicsRequest optionally carries custom context that steers topic
// generation upstream.
type GenerateTopicsRequest struct {
	CustomContext string `json:"custom_context,omitempty"`
}

// EditorNotesRequest updates the editor-notes input before persisting it.
type EditorNotesRequest struct {
	EditorNotes string `json:"editor_notes"`
}

// TopicsView is the topic store portion of the session snapshot.
type TopicsView struct {
	Topics          []entity.MetaSuggestion `json:"topics"`
	SelectedTopicID *int64                  `json:"selected_topic_id"`
	IsLoading       bool                    `json:"is_loading"`
	IsGenerating    bool                    `json:"is_generating"`
	Error           string                  `json:"error,omitempty"`
	IsChoosing      bool                    `json:"is_choosing"`
	ChooseError     string                  `json:"choose_error,omitempty"`
}

// OutlineView is the outline store portion of the session snapshot.
type OutlineView struct {
	Outline   *entity.Outline `json:"outline"`
	IsLoading bool            `json:"is_loading"`
	Error     string          `json:"error,omitempty"`
}

// NewsletterView is the newsletter store portion of the session snapshot.
type NewsletterView struct {
	Newsletter     *entity.GeneratedNewsletter `json:"newsletter"`
	NotesInput     string                      `json:"notes_input"`
	IsLoading      bool                        `json:"is_loading"`
	TriggerError   string                      `json:"trigger_error,omitempty"`
	Error          string                      `json:"error,omitempty"`
	IsSavingNotes  bool                        `json:"is_saving_notes"`
	SaveNotesError string                      `json:"save_notes_error,omitempty"`
	IsRegenerating bool                        `json:"is_regenerating"`
	RegenerateErr  string                      `json:"regenerate_error,omitempty"`
}

// FeedsView groups the three auxiliary read-only feeds.
type FeedsView struct {
	DeepDives      *entity.DeepDiveSet       `json:"deep_dives"`
	JobEntries     []entity.JobTrackingEntry `json:"job_entries"`
	UpcomingEvents []entity.UpcomingEvent    `json:"upcoming_events"`
	IsLoading      bool                      `json:"is_loading"`
}

// SessionResponse is the full workflow snapshot served to clients.
type SessionResponse struct {
	Step       string         `json:"step"`
	Topics     TopicsView     `json:"topics"`
	Outline    OutlineView    `json:"outline"`
	Newsletter NewsletterView `json:"newsletter"`
	Feeds      FeedsView      `json:"feeds"`
}
