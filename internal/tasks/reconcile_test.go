package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "health check", Normalize("  Health Check "))
	assert.Equal(t, "health check", Normalize("HEALTH CHECK"))
}

func TestMasterListHasEightUniqueTasks(t *testing.T) {
	assert.Len(t, MasterTasks, 8)

	seen := map[string]bool{}
	for _, name := range MasterTasks {
		norm := Normalize(name)
		assert.False(t, seen[norm], "duplicate task %q", name)
		seen[norm] = true
	}
}

func TestDiffSelectionAddsAndRemoves(t *testing.T) {
	toAdd, toRemove := diffSelection(
		[]string{"Health Check", "Feed Distribution"}, // selected
		[]string{"Feed Distribution", "Water Refill"}, // mine
		nil, // others
	)

	assert.Equal(t, []string{"Health Check"}, toAdd)
	assert.Equal(t, []string{Normalize("Water Refill")}, toRemove)
}

func TestDiffSelectionDropsTasksHeldByOthers(t *testing.T) {
	// E2 selects Health Check, but E1 already holds it for this animal: the
	// selection is dropped silently and E1 keeps the task.
	toAdd, toRemove := diffSelection(
		[]string{"Health Check", "Milk Collection"},
		nil,
		[]string{"Health Check"},
	)

	assert.Equal(t, []string{"Milk Collection"}, toAdd)
	assert.Empty(t, toRemove)
}

func TestDiffSelectionIsCaseAndSpaceInsensitive(t *testing.T) {
	toAdd, toRemove := diffSelection(
		[]string{"  health check  "},
		[]string{"HEALTH CHECK"},
		nil,
	)

	// same task under normalization: nothing to do
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}

func TestDiffSelectionAddsCanonicalSpelling(t *testing.T) {
	toAdd, _ := diffSelection([]string{"  MILK collection "}, nil, nil)
	assert.Equal(t, []string{"Milk Collection"}, toAdd)
}

func TestDiffSelectionIdempotent(t *testing.T) {
	selected := []string{"Health Check", "Feed Distribution"}

	toAdd, toRemove := diffSelection(selected, selected, nil)
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}

func TestDiffSelectionEmptySelectionRemovesEverything(t *testing.T) {
	mine := []string{"Health Check", "Feed Distribution"}
	toAdd, toRemove := diffSelection(nil, mine, nil)

	assert.Empty(t, toAdd)
	assert.Len(t, toRemove, 2)
}

func TestDiffSelectionIgnoresUnknownNames(t *testing.T) {
	// names outside the master list never produce assignments
	toAdd, toRemove := diffSelection([]string{"Paint The Fence"}, nil, nil)
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}
