package healthlog

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

func TestUpsertInsertsAndUpdates(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertMany([]Entry{
		{Date: "2025-12-16", AnimalID: 1, TagNumber: "A-101", MilkLiters: 12},
	}))
	require.NoError(t, s.UpsertMany([]Entry{
		{Date: "2025-12-16", AnimalID: 1, TagNumber: "A-101", MilkLiters: 15, Notes: "evening top-up"},
	}))

	entries, err := s.ByDate("2025-12-16")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 15.0, entries[0].MilkLiters)
	assert.Equal(t, "evening top-up", entries[0].Notes)
}

func TestUpsertEmptyEntryDeletesExisting(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertMany([]Entry{
		{Date: "2025-12-16", AnimalID: 1, TagNumber: "A-101", HealthChecked: true},
	}))

	// all-zero row for the same day and animal
	require.NoError(t, s.UpsertMany([]Entry{
		{Date: "2025-12-16", AnimalID: 1, TagNumber: "A-101"},
	}))

	entries, err := s.ByDate("2025-12-16")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpsertEmptyEntryIsNeverStored(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertMany([]Entry{
		{Date: "2025-12-16", AnimalID: 7, TagNumber: "A-107"},
	}))

	all, err := s.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMedicineFieldsClearedWhenNotGiven(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertMany([]Entry{
		{
			Date: "2025-12-16", AnimalID: 1, TagNumber: "A-101",
			MilkLiters: 4, MedicineGiven: false, MedicineName: "Antibiotic", Dose: "5ml",
		},
	}))

	entries, err := s.ByDate("2025-12-16")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "None", entries[0].MedicineName)
	assert.Equal(t, "", entries[0].Dose)
}

func TestByDateAndByMonthFilter(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertMany([]Entry{
		{Date: "2025-11-30", AnimalID: 1, TagNumber: "A-101", MilkLiters: 5},
		{Date: "2025-12-01", AnimalID: 1, TagNumber: "A-101", MilkLiters: 6},
		{Date: "2025-12-16", AnimalID: 2, TagNumber: "A-102", MilkLiters: 7},
	}))

	day, err := s.ByDate("2025-12-01")
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, 6.0, day[0].MilkLiters)

	dec, err := s.ByMonth(2025, 12)
	require.NoError(t, err)
	assert.Len(t, dec, 2)

	nov, err := s.ByMonth(2025, 11)
	require.NoError(t, err)
	assert.Len(t, nov, 1)
}

func TestEntryIsEmpty(t *testing.T) {
	assert.True(t, Entry{Notes: "   "}.IsEmpty())
	assert.False(t, Entry{MilkLiters: 0.5}.IsEmpty())
	assert.False(t, Entry{HealthChecked: true}.IsEmpty())
	assert.False(t, Entry{MedicineGiven: true}.IsEmpty())
	assert.False(t, Entry{Notes: "limping"}.IsEmpty())
}
