package memory

import (
	"encoding/json"
	"gathergrove/internal/store"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	t.Parallel()

	s := New()

	err := s.Set("events", "e1", map[string]any{"title": "Block party", "capacity": 10}, false)
	require.NoError(t, err)

	var got map[string]any
	err = s.Get("events", "e1", &got)
	require.NoError(t, err)
	assert.Equal(t, "Block party", got["title"])
	assert.Equal(t, float64(10), got["capacity"])
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	s := New()

	var got map[string]any
	err := s.Get("events", "nope", &got)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSetReplace(t *testing.T) {
	t.Parallel()

	s := New()

	require.NoError(t, s.Set("events", "e1", map[string]any{"title": "Old", "location": "Park"}, false))
	require.NoError(t, s.Set("events", "e1", map[string]any{"title": "New"}, false))

	var got map[string]any
	require.NoError(t, s.Get("events", "e1", &got))
	assert.Equal(t, "New", got["title"])
	assert.NotContains(t, got, "location")
}

func TestSetMerge(t *testing.T) {
	t.Parallel()

	s := New()

	require.NoError(t, s.Set("events", "e1", map[string]any{"title": "Old", "location": "Park"}, false))
	require.NoError(t, s.Set("events", "e1", map[string]any{"title": "New"}, true))

	var got map[string]any
	require.NoError(t, s.Get("events", "e1", &got))
	assert.Equal(t, "New", got["title"])
	assert.Equal(t, "Park", got["location"])
}

func TestMergeOverwritesWithNull(t *testing.T) {
	t.Parallel()

	s := New()

	require.NoError(t, s.Set("events", "e1", map[string]any{"shareable_link": "/e/e1"}, false))
	require.NoError(t, s.Set("events", "e1", map[string]any{"shareable_link": nil}, true))

	var got map[string]any
	require.NoError(t, s.Get("events", "e1", &got))
	assert.Contains(t, got, "shareable_link")
	assert.Nil(t, got["shareable_link"])
}

func TestMergeReplacesNestedObjects(t *testing.T) {
	t.Parallel()

	s := New()

	require.NoError(t, s.Set("push_tokens", "u1", map[string]any{
		"platforms": map[string]any{"tok-a": "ios"},
	}, false))
	require.NoError(t, s.Set("push_tokens", "u1", map[string]any{
		"platforms": map[string]any{"tok-b": "android"},
	}, true))

	var got map[string]any
	require.NoError(t, s.Get("push_tokens", "u1", &got))

	platforms, ok := got["platforms"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"tok-b": "android"}, platforms)
}

func TestMergeIntoMissingCreates(t *testing.T) {
	t.Parallel()

	s := New()

	require.NoError(t, s.Set("events", "e1", map[string]any{"title": "Fresh"}, true))

	var got map[string]any
	require.NoError(t, s.Get("events", "e1", &got))
	assert.Equal(t, "Fresh", got["title"])
}

func TestDeleteIdempotent(t *testing.T) {
	t.Parallel()

	s := New()

	require.NoError(t, s.Set("events", "e1", map[string]any{"title": "Gone soon"}, false))
	require.NoError(t, s.Delete("events", "e1"))
	require.NoError(t, s.Delete("events", "e1"))

	var got map[string]any
	assert.ErrorIs(t, s.Get("events", "e1", &got), store.ErrNotFound)
}

func TestListAllSorted(t *testing.T) {
	t.Parallel()

	s := New()

	require.NoError(t, s.Set("events", "b", map[string]any{"title": "B"}, false))
	require.NoError(t, s.Set("events", "a", map[string]any{"title": "A"}, false))
	require.NoError(t, s.Set("events", "c", map[string]any{"title": "C"}, false))

	docs, err := s.ListAll("events")
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
	assert.Equal(t, "c", docs[2].ID)

	var first map[string]any
	require.NoError(t, json.Unmarshal(docs[0].Data, &first))
	assert.Equal(t, "A", first["title"])
}

func TestListAllEmptyCollection(t *testing.T) {
	t.Parallel()

	s := New()

	docs, err := s.ListAll("events")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestCollectionsAreIsolated(t *testing.T) {
	t.Parallel()

	s := New()

	require.NoError(t, s.Set("events", "x", map[string]any{"title": "Event"}, false))
	require.NoError(t, s.Set("event_attendees", "x", map[string]any{"status": "going"}, false))

	var got map[string]any
	require.NoError(t, s.Get("events", "x", &got))
	assert.Equal(t, "Event", got["title"])

	require.NoError(t, s.Delete("events", "x"))
	require.NoError(t, s.Get("event_attendees", "x", &got))
	assert.Equal(t, "going", got["status"])
}
