// Package workflow drives the three-step newsletter progression:
// select a topic, review its outline, write and export the newsletter.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"momentum-studio/internal/entity"
	"momentum-studio/internal/studio/config"
	"momentum-studio/internal/studio/store"
	"momentum-studio/pkg/logger"
)

// Step is one of the three workflow states. No other states exist.
type Step string

const (
	StepSelect  Step = "select"
	StepOutline Step = "outline"
	StepWriting Step = "writing"
)

// ErrNoSelection is returned by actions that require a selected topic.
var ErrNoSelection = errors.New("no topic is selected")

// ErrNoOutline is returned by actions that require a loaded outline.
var ErrNoOutline = errors.New("no outline is loaded")

// ErrNoNewsletter is returned by actions that require a generated newsletter.
var ErrNoNewsletter = errors.New("no newsletter has been generated")

// Controller coordinates the stores into the workflow state machine. It only
// reads store state and mutates stores through their action methods; each
// store keeps single-writer ownership of its own fields.
type Controller struct {
	Topics     *store.TopicStore
	Outline    *store.OutlineStore
	Newsletter *store.NewsletterStore
	DeepDives  *store.DeepDiveStore
	Jobs       *store.JobTrackingStore
	Events     *store.EventsStore

	cfg *config.Config
	log *logger.Logger

	mu sync.Mutex
	// writingOverride marks the one imperative transition (outline→writing)
	// that follows a successful submit rather than being re-derived from
	// store reads. It is cleared whenever the downstream state it depends
	// on is torn down.
	writingOverride bool
}

// New creates a workflow controller over the given stores.
func New(cfg *config.Config, log *logger.Logger,
	topics *store.TopicStore, outline *store.OutlineStore, newsletter *store.NewsletterStore,
	deepDives *store.DeepDiveStore, jobs *store.JobTrackingStore, events *store.EventsStore) *Controller {
	return &Controller{
		Topics:     topics,
		Outline:    outline,
		Newsletter: newsletter,
		DeepDives:  deepDives,
		Jobs:       jobs,
		Events:     events,
		cfg:        cfg,
		log:        log,
	}
}

// Step derives the current workflow step from store state. With no selection
// the workflow is always at topic selection; a populated newsletter shows
// the writing step only after an explicit successful submit.
func (c *Controller) Step() Step {
	if c.Topics.SelectedTopicID() == nil {
		return StepSelect
	}

	c.mu.Lock()
	override := c.writingOverride
	c.mu.Unlock()

	if override && c.Newsletter.Newsletter() != nil {
		return StepWriting
	}

	outlineState := c.Outline.State()
	if outlineState.Outline != nil && !outlineState.IsLoading {
		return StepOutline
	}
	return StepSelect
}

// Bootstrap performs the initial pull: the topic list plus both auxiliary
// feeds. Feed failures surface on their stores, not as a bootstrap error.
func (c *Controller) Bootstrap(ctx context.Context) {
	c.Topics.Fetch(ctx, c.cfg.Studio.TopicLimit)
	c.Events.Fetch(ctx)
	c.Jobs.Fetch(ctx, c.cfg.Studio.MoversDays)
}

// RefreshTopics refetches the topic list wholesale.
func (c *Controller) RefreshTopics(ctx context.Context) {
	c.Topics.Fetch(ctx, c.cfg.Studio.TopicLimit)
}

// GenerateTopics triggers topic generation upstream and refetches the list.
func (c *Controller) GenerateTopics(ctx context.Context, customContext string) {
	c.Topics.Generate(ctx, customContext, c.cfg.Studio.TopicLimit)
}

// SelectTopic toggles the topic selection. Re-selecting the current topic
// deselects it and clears all downstream state. Selecting a different topic
// chooses it upstream and fetches its deep dives; the outline is never
// auto-fetched. A choose failure rolls everything back to topic selection.
func (c *Controller) SelectTopic(ctx context.Context, topicID int64) {
	current := c.Topics.SelectedTopicID()
	if current != nil && *current == topicID {
		c.Topics.Select(ctx, nil)
		c.clearDownstream()
		return
	}

	c.Topics.Select(ctx, &topicID)
	if c.Topics.SelectedTopicID() == nil {
		// Choose failed upstream; the store already rolled the selection
		// back, so downstream state must follow.
		c.clearDownstream()
		return
	}
	c.DeepDives.Fetch(ctx, topicID)
}

// GenerateOutline runs outline generation for the selected topic. An
// existing newsletter is cleared first; if the (rare) surviving newsletter
// matches the freshly loaded outline, its notes seed the input so a
// previously completed outline picks up where it left off.
func (c *Controller) GenerateOutline(ctx context.Context) (bool, error) {
	selected := c.Topics.SelectedTopicID()
	if selected == nil {
		return false, ErrNoSelection
	}

	if c.Newsletter.Newsletter() != nil {
		c.Newsletter.Clear()
		c.setWritingOverride(false)
	}

	ok := c.Outline.Generate(ctx, *selected)
	if !ok {
		return false, nil
	}

	if outline := c.Outline.Outline(); outline != nil {
		if nl := c.Newsletter.Newsletter(); nl != nil && nl.OutlineID == outline.ID {
			c.Newsletter.SetNotesInput(notesValue(nl))
		}
	}
	return true, nil
}

// SubmitNewsletter triggers newsletter generation from the current outline.
// On success the workflow advances to the writing step; on failure it stays
// at the outline step with the trigger error recorded on the store.
func (c *Controller) SubmitNewsletter(ctx context.Context) error {
	outline := c.Outline.Outline()
	if outline == nil {
		return ErrNoOutline
	}

	c.Newsletter.Trigger(ctx, outline.ID)

	state := c.Newsletter.State()
	if state.Newsletter == nil || state.TriggerErr != "" {
		return fmt.Errorf("newsletter generation failed: %s", state.TriggerErr)
	}
	c.setWritingOverride(true)
	return nil
}

// SaveNotes persists the editor-notes input. Saving is skipped when the
// input equals the already persisted notes; a forced save of identical text
// is harmless upstream, this just avoids the redundant round trip.
func (c *Controller) SaveNotes(ctx context.Context) error {
	newsletter := c.Newsletter.Newsletter()
	if newsletter == nil {
		return ErrNoNewsletter
	}
	if c.Newsletter.NotesInput() == notesValue(newsletter) {
		return nil
	}
	c.Newsletter.SaveNotes(ctx, newsletter.ID)
	return nil
}

// Regenerate re-drafts the newsletter from its persisted editor notes.
// Without saved notes there is nothing to steer regeneration with.
func (c *Controller) Regenerate(ctx context.Context) error {
	newsletter := c.Newsletter.Newsletter()
	if newsletter == nil {
		return ErrNoNewsletter
	}
	if notesValue(newsletter) == "" {
		return errors.New("save editor notes before regenerating")
	}
	c.Newsletter.Regenerate(ctx, newsletter.ID)
	return nil
}

// BackToSelection returns to topic selection, clearing the outline and
// newsletter. The topic list and its selection survive.
func (c *Controller) BackToSelection() {
	c.Outline.Clear()
	c.Newsletter.Clear()
	c.setWritingOverride(false)
}

// Reset disposes all session state, returning every store to zero.
func (c *Controller) Reset() {
	c.Topics.Reset()
	c.Outline.Reset()
	c.Newsletter.Reset()
	c.DeepDives.Reset()
	c.Jobs.Reset()
	c.Events.Reset()
	c.setWritingOverride(false)
}

// FeedsLoading reports whether any auxiliary feed fetch is still in flight.
// The export pipeline blocks on this rather than rendering partial data.
func (c *Controller) FeedsLoading() bool {
	return c.DeepDives.State().IsLoading || c.Jobs.State().IsLoading || c.Events.State().IsLoading
}

func (c *Controller) clearDownstream() {
	c.Outline.Clear()
	c.Newsletter.Clear()
	c.DeepDives.Clear()
	c.setWritingOverride(false)
}

func (c *Controller) setWritingOverride(v bool) {
	c.mu.Lock()
	c.writingOverride = v
	c.mu.Unlock()
}

func notesValue(n *entity.GeneratedNewsletter) string {
	if n == nil || n.EditorNotes == nil {
		return ""
	}
	return *n.EditorNotes
}
