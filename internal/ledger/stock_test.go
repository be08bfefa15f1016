package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStock(t *testing.T) *StockLedger {
	t.Helper()
	return NewStockLedger(t.TempDir())
}

func TestEnsureInitializedSeedsAndBackfills(t *testing.T) {
	l := newTestStock(t)

	require.NoError(t, l.EnsureInitialized([]string{"milk_raw_milk", "cheese_paneer"}, 10))
	assert.Equal(t, 10, l.Get("milk_raw_milk"))
	assert.Equal(t, 10, l.Get("cheese_paneer"))

	// manual change survives a second init, new key is backfilled
	require.NoError(t, l.Set("milk_raw_milk", 3))
	require.NoError(t, l.EnsureInitialized([]string{"milk_raw_milk", "cheese_paneer", "yogurt_greek"}, 10))
	assert.Equal(t, 3, l.Get("milk_raw_milk"))
	assert.Equal(t, 10, l.Get("yogurt_greek"))
}

func TestGetUnknownKeyIsZero(t *testing.T) {
	l := newTestStock(t)
	assert.Equal(t, 0, l.Get("no_such_product"))
}

func TestSetClampsNegative(t *testing.T) {
	l := newTestStock(t)
	require.NoError(t, l.Set("milk_raw_milk", -5))
	assert.Equal(t, 0, l.Get("milk_raw_milk"))
}

func TestIncreaseIgnoresNonPositive(t *testing.T) {
	l := newTestStock(t)
	require.NoError(t, l.Set("milk_raw_milk", 4))

	require.NoError(t, l.Increase("milk_raw_milk", 0))
	require.NoError(t, l.Increase("milk_raw_milk", -3))
	assert.Equal(t, 4, l.Get("milk_raw_milk"))

	require.NoError(t, l.Increase("milk_raw_milk", 6))
	assert.Equal(t, 10, l.Get("milk_raw_milk"))
}

func TestDecreaseBulkAllOrNothing(t *testing.T) {
	l := newTestStock(t)
	require.NoError(t, l.EnsureInitialized([]string{"milk_raw_milk", "cheese_paneer"}, 10))

	// both lines covered -> both decremented
	require.NoError(t, l.DecreaseBulk(map[string]int{
		"milk_raw_milk": 4,
		"cheese_paneer": 2,
	}))
	assert.Equal(t, 6, l.Get("milk_raw_milk"))
	assert.Equal(t, 8, l.Get("cheese_paneer"))

	// 99 against 6 -> typed failure, nothing changes
	err := l.DecreaseBulk(map[string]int{"milk_raw_milk": 99})
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "milk_raw_milk", insufficient.Key)
	assert.Equal(t, 6, insufficient.Available)
	assert.Equal(t, 6, l.Get("milk_raw_milk"))
}

func TestDecreaseBulkFailureLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	l := NewStockLedger(dir)
	require.NoError(t, l.EnsureInitialized([]string{"milk_raw_milk", "cheese_paneer"}, 10))

	before, err := os.ReadFile(filepath.Join(dir, "stock.json"))
	require.NoError(t, err)

	// one good line, one short line -> whole call fails
	err = l.DecreaseBulk(map[string]int{
		"milk_raw_milk": 2,
		"cheese_paneer": 11,
	})
	require.Error(t, err)

	after, err := os.ReadFile(filepath.Join(dir, "stock.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDecreaseBulkValidatesInput(t *testing.T) {
	l := newTestStock(t)
	require.NoError(t, l.Set("milk_raw_milk", 10))

	assert.ErrorIs(t, l.DecreaseBulk(nil), ErrInvalidRequest)
	assert.ErrorIs(t, l.DecreaseBulk(map[string]int{}), ErrInvalidRequest)
	assert.ErrorIs(t, l.DecreaseBulk(map[string]int{"": 1}), ErrInvalidRequest)
	assert.ErrorIs(t, l.DecreaseBulk(map[string]int{"milk_raw_milk": 0}), ErrInvalidRequest)
	assert.ErrorIs(t, l.DecreaseBulk(map[string]int{"milk_raw_milk": -4}), ErrInvalidRequest)
	assert.Equal(t, 10, l.Get("milk_raw_milk"))
}

func TestIncreaseThenDecreaseRoundTrip(t *testing.T) {
	l := newTestStock(t)
	require.NoError(t, l.Set("milk_raw_milk", 7))

	require.NoError(t, l.Increase("milk_raw_milk", 5))
	require.NoError(t, l.DecreaseBulk(map[string]int{"milk_raw_milk": 5}))
	assert.Equal(t, 7, l.Get("milk_raw_milk"))
}

func TestDecreaseBulkTotalDeviation(t *testing.T) {
	l := newTestStock(t)
	keys := []string{"milk_raw_milk", "cheese_paneer", "yogurt_greek"}
	require.NoError(t, l.EnsureInitialized(keys, 20))

	req := map[string]int{"milk_raw_milk": 3, "cheese_paneer": 7, "yogurt_greek": 1}
	require.NoError(t, l.DecreaseBulk(req))

	sumBefore := 3 * 20
	sumAfter := 0
	for _, k := range keys {
		sumAfter += l.Get(k)
	}
	want := 0
	for _, n := range req {
		want += n
	}
	assert.Equal(t, want, sumBefore-sumAfter)
}

func TestErrorsAreTyped(t *testing.T) {
	err := error(&InsufficientStockError{Key: "milk_raw_milk", Available: 6})
	var insufficient *InsufficientStockError
	assert.True(t, errors.As(err, &insufficient))
	assert.Contains(t, err.Error(), "only 6 left")
}
