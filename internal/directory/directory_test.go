package directory

import (
	"gathergrove/internal/store"
	"gathergrove/internal/store/memory"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory(t *testing.T) (*StoreDirectory, store.Store) {
	t.Helper()

	s := memory.New()
	d := New(s)
	d.now = func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	}

	return d, s
}

func TestLookupByUID(t *testing.T) {
	t.Parallel()

	d, s := newTestDirectory(t)

	require.NoError(t, s.Set(store.CollectionHouseholds, "uid-1", map[string]any{
		"last_name":      "Alvarez",
		"neighborhood":   "Bayhill",
		"household_type": "family",
	}, false))

	hh, err := d.Lookup("uid-1")
	require.NoError(t, err)
	require.NotNil(t, hh)
	assert.Equal(t, "uid-1", hh.ID)
	assert.Equal(t, "Alvarez", hh.LastName)
	assert.Equal(t, "Bayhill", hh.Neighborhood)
	assert.Equal(t, "family", hh.HouseholdType)
	assert.Empty(t, hh.ChildAges)
}

func TestLookupFallsBackToUsers(t *testing.T) {
	t.Parallel()

	d, s := newTestDirectory(t)

	require.NoError(t, s.Set(store.CollectionUsers, "uid-2", map[string]any{
		"display_last_name": "Chen",
		"neighborhoods":     []string{"Creekside", "Bayhill"},
		"type":              "single",
	}, false))

	hh, err := d.Lookup("uid-2")
	require.NoError(t, err)
	require.NotNil(t, hh)
	assert.Equal(t, "Chen", hh.LastName)
	assert.Equal(t, "Creekside", hh.Neighborhood)
	assert.Equal(t, "single", hh.HouseholdType)
}

func TestLookupByUIDField(t *testing.T) {
	t.Parallel()

	d, s := newTestDirectory(t)

	require.NoError(t, s.Set(store.CollectionHouseholds, "hh-42", map[string]any{
		"uid":       "uid-3",
		"last_name": "Okafor",
	}, false))

	hh, err := d.Lookup("uid-3")
	require.NoError(t, err)
	require.NotNil(t, hh)
	assert.Equal(t, "hh-42", hh.ID)
	assert.Equal(t, "Okafor", hh.LastName)
}

func TestLookupUnknownUID(t *testing.T) {
	t.Parallel()

	d, _ := newTestDirectory(t)

	hh, err := d.Lookup("nobody")
	require.NoError(t, err)
	assert.Nil(t, hh)
}

func TestLookupEmptyUID(t *testing.T) {
	t.Parallel()

	d, _ := newTestDirectory(t)

	hh, err := d.Lookup("")
	require.NoError(t, err)
	assert.Nil(t, hh)
}

func TestHouseholdIDOverride(t *testing.T) {
	t.Parallel()

	d, s := newTestDirectory(t)

	require.NoError(t, s.Set(store.CollectionHouseholds, "uid-4", map[string]any{
		"household_id": "hh-legacy",
		"last_name":    "Brooks",
	}, false))

	hh, err := d.Lookup("uid-4")
	require.NoError(t, err)
	require.NotNil(t, hh)
	assert.Equal(t, "hh-legacy", hh.ID)
}

func TestChildAges(t *testing.T) {
	t.Parallel()

	d, s := newTestDirectory(t)

	require.NoError(t, s.Set(store.CollectionHouseholds, "uid-5", map[string]any{
		"last_name": "Diaz",
		"kids": []map[string]any{
			{"birth_year": 2020, "birth_month": 3},
			{"birth_year": 2024, "birth_month": 12},
			{"birth_year": "2018", "birth_month": "6"},
			{"name": "no birth year"},
		},
	}, false))

	hh, err := d.Lookup("uid-5")
	require.NoError(t, err)
	require.NotNil(t, hh)

	// Fixed clock: 2026-06-15.
	assert.Equal(t, []int{6, 1, 8}, hh.ChildAges)
}

func TestChildAgeMissingMonthDefaultsToJanuary(t *testing.T) {
	t.Parallel()

	d, s := newTestDirectory(t)

	require.NoError(t, s.Set(store.CollectionHouseholds, "uid-6", map[string]any{
		"kids": []map[string]any{
			{"birth_year": 2026},
		},
	}, false))

	hh, err := d.Lookup("uid-6")
	require.NoError(t, err)
	require.NotNil(t, hh)
	assert.Equal(t, []int{0}, hh.ChildAges)
}
