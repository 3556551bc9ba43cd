package store

import (
	"context"
	"errors"
	"testing"

	"momentum-studio/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicFetch_ReplacesListWholesale(t *testing.T) {
	client := newFakeClient()
	client.topics = []entity.MetaSuggestion{{ID: 1, Title: "Open Banking"}}
	s := NewTopicStore(client, newTestLogger(t))

	s.Fetch(context.Background(), 20)

	state := s.State()
	require.Len(t, state.Topics, 1)
	assert.Equal(t, "Open Banking", state.Topics[0].Title)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Err)

	client.topics = []entity.MetaSuggestion{{ID: 2, Title: "Embedded Finance"}}
	s.Fetch(context.Background(), 20)

	state = s.State()
	require.Len(t, state.Topics, 1)
	assert.Equal(t, int64(2), state.Topics[0].ID)
}

func TestTopicFetch_ErrorKeepsPreviousList(t *testing.T) {
	client := newFakeClient()
	client.topics = []entity.MetaSuggestion{{ID: 1, Title: "Open Banking"}}
	s := NewTopicStore(client, newTestLogger(t))
	s.Fetch(context.Background(), 20)

	client.listErr = errors.New("backend down")
	s.Fetch(context.Background(), 20)

	state := s.State()
	assert.Equal(t, "backend down", state.Err)
	require.Len(t, state.Topics, 1)
	assert.False(t, state.IsLoading)
}

func TestTopicGenerate_TriggersThenRefetches(t *testing.T) {
	client := newFakeClient()
	client.topics = []entity.MetaSuggestion{{ID: 3, Title: "Core Modernization"}}
	s := NewTopicStore(client, newTestLogger(t))

	s.Generate(context.Background(), "fresh angles", 20)

	assert.Equal(t, 1, client.calls["GenerateTopics"])
	assert.Equal(t, 1, client.calls["ListTopics"])
	state := s.State()
	assert.False(t, state.IsGenerating)
	require.Len(t, state.Topics, 1)
}

func TestTopicGenerate_FailureSkipsRefetch(t *testing.T) {
	client := newFakeClient()
	client.generateErr = errors.New("rate limited")
	s := NewTopicStore(client, newTestLogger(t))

	s.Generate(context.Background(), "", 20)

	assert.Equal(t, 0, client.calls["ListTopics"])
	state := s.State()
	assert.Equal(t, "rate limited", state.Err)
	assert.False(t, state.IsGenerating)
}

func TestTopicSelect_NilClearsWithoutNetwork(t *testing.T) {
	client := newFakeClient()
	s := NewTopicStore(client, newTestLogger(t))
	id := int64(1)
	client.chosen = &entity.MetaSuggestion{ID: 1, IsChosen: true}
	client.topics = []entity.MetaSuggestion{{ID: 1}}
	s.Fetch(context.Background(), 20)
	s.Select(context.Background(), &id)
	require.NotNil(t, s.SelectedTopicID())

	s.Select(context.Background(), nil)

	assert.Nil(t, s.SelectedTopicID())
	assert.Equal(t, 1, client.calls["ChooseTopic"])
}

func TestTopicSelect_PatchesChosenEntryFromEcho(t *testing.T) {
	client := newFakeClient()
	client.topics = []entity.MetaSuggestion{{ID: 1}, {ID: 2}}
	client.chosen = &entity.MetaSuggestion{ID: 2, IsChosen: true, ChosenAt: strPtr("2025-08-30T10:00:00")}
	s := NewTopicStore(client, newTestLogger(t))
	s.Fetch(context.Background(), 20)

	id := int64(2)
	s.Select(context.Background(), &id)

	state := s.State()
	require.NotNil(t, state.SelectedTopicID)
	assert.Equal(t, int64(2), *state.SelectedTopicID)
	assert.False(t, state.Topics[0].IsChosen)
	assert.True(t, state.Topics[1].IsChosen)
	require.NotNil(t, state.Topics[1].ChosenAt)
	assert.Equal(t, "2025-08-30T10:00:00", *state.Topics[1].ChosenAt)
}

func TestTopicSelect_ChooseFailureRollsBack(t *testing.T) {
	client := newFakeClient()
	client.topics = []entity.MetaSuggestion{{ID: 1}}
	client.chooseErr = errors.New("choose rejected")
	s := NewTopicStore(client, newTestLogger(t))
	s.Fetch(context.Background(), 20)

	id := int64(1)
	s.Select(context.Background(), &id)

	state := s.State()
	assert.Nil(t, state.SelectedTopicID)
	assert.Equal(t, "choose rejected", state.ChooseErr)
	assert.False(t, state.Topics[0].IsChosen)
}

func TestTopicReset_ReturnsToZeroState(t *testing.T) {
	client := newFakeClient()
	client.topics = []entity.MetaSuggestion{{ID: 1}}
	s := NewTopicStore(client, newTestLogger(t))
	s.Fetch(context.Background(), 20)

	s.Reset()

	state := s.State()
	assert.Empty(t, state.Topics)
	assert.Nil(t, state.SelectedTopicID)
	assert.Empty(t, state.Err)
}
