package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(t.TempDir())
	require.NoError(t, s.EnsureInitialized())
	return s
}

func TestUpsertInsertsThenUpdates(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertMany([]StatusEntry{
		{AnimalID: 1, TagNumber: "A-101", Status: "Pregnant", UpdatedOn: "2025-12-01"},
	}))
	require.NoError(t, s.UpsertMany([]StatusEntry{
		{AnimalID: 1, TagNumber: "A-101", Status: "Active", Notes: "calved", UpdatedOn: "2026-01-10"},
	}))

	e, found, err := s.ByAnimal(1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Active", e.Status)
	assert.Equal(t, "calved", e.Notes)
	assert.Equal(t, "2026-01-10", e.UpdatedOn)

	all, err := s.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBlankStatusDefaultsToActive(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertMany([]StatusEntry{
		{AnimalID: 3, TagNumber: "A-103", Status: "   "},
	}))

	e, found, err := s.ByAnimal(3)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Active", e.Status)
}

func TestEntriesSortedByTagNumber(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertMany([]StatusEntry{
		{AnimalID: 2, TagNumber: "B-200", Status: "On Sell"},
		{AnimalID: 1, TagNumber: "A-101", Status: "Sold"},
	}))

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A-101", all[0].TagNumber)
	assert.Equal(t, "B-200", all[1].TagNumber)
}

func TestByAnimalMissing(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.ByAnimal(99)
	require.NoError(t, err)
	assert.False(t, found)
}
