package store

import (
	"context"
	"testing"

	"momentum-studio/internal/entity"
	"momentum-studio/pkg/logger"

	"github.com/stretchr/testify/require"
)

// fakeClient is a scriptable backend.Client recording every call.
type fakeClient struct {
	topics     []entity.MetaSuggestion
	chosen     *entity.MetaSuggestion
	outlineID  int64
	outline    *entity.Outline
	newsletter *entity.GeneratedNewsletter
	deepDives  *entity.DeepDiveSet
	jobEntries []entity.JobTrackingEntry
	events     []entity.UpcomingEvent

	listErr       error
	generateErr   error
	chooseErr     error
	outlineGenErr error
	outlineGetErr error
	newsletterErr error
	saveNotesErr  error
	regenErr      error
	deepDiveErr   error
	jobErr        error
	eventsErr     error

	calls map[string]int
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: map[string]int{}}
}

func (f *fakeClient) ListTopics(ctx context.Context, limit int) ([]entity.MetaSuggestion, error) {
	f.calls["ListTopics"]++
	return f.topics, f.listErr
}

func (f *fakeClient) GenerateTopics(ctx context.Context, customContext string) error {
	f.calls["GenerateTopics"]++
	return f.generateErr
}

func (f *fakeClient) ChooseTopic(ctx context.Context, id int64) (*entity.MetaSuggestion, error) {
	f.calls["ChooseTopic"]++
	return f.chosen, f.chooseErr
}

func (f *fakeClient) GenerateOutline(ctx context.Context, topicID int64) (int64, error) {
	f.calls["GenerateOutline"]++
	return f.outlineID, f.outlineGenErr
}

func (f *fakeClient) GetOutline(ctx context.Context, id int64) (*entity.Outline, error) {
	f.calls["GetOutline"]++
	return f.outline, f.outlineGetErr
}

func (f *fakeClient) GenerateNewsletter(ctx context.Context, outlineID int64) (*entity.GeneratedNewsletter, error) {
	f.calls["GenerateNewsletter"]++
	return f.newsletter, f.newsletterErr
}

func (f *fakeClient) SaveEditorNotes(ctx context.Context, id int64, notes string) (*entity.GeneratedNewsletter, error) {
	f.calls["SaveEditorNotes"]++
	return f.newsletter, f.saveNotesErr
}

func (f *fakeClient) RegenerateNewsletter(ctx context.Context, id int64) (*entity.GeneratedNewsletter, error) {
	f.calls["RegenerateNewsletter"]++
	return f.newsletter, f.regenErr
}

func (f *fakeClient) DeepDivesWithURLs(ctx context.Context, topicID int64) (*entity.DeepDiveSet, error) {
	f.calls["DeepDivesWithURLs"]++
	return f.deepDives, f.deepDiveErr
}

func (f *fakeClient) JobTracking(ctx context.Context, daysOld int) ([]entity.JobTrackingEntry, error) {
	f.calls["JobTracking"]++
	return f.jobEntries, f.jobErr
}

func (f *fakeClient) UpcomingEvents(ctx context.Context) ([]entity.UpcomingEvent, error) {
	f.calls["UpcomingEvents"]++
	return f.events, f.eventsErr
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	return log
}

func strPtr(s string) *string { return &s }
