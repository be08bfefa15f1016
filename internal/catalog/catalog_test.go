package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductKeysAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Products {
		assert.False(t, seen[p.Key], "duplicate product key %q", p.Key)
		seen[p.Key] = true
	}
}

func TestProductsAreWellFormed(t *testing.T) {
	for _, p := range Products {
		assert.NotEmpty(t, p.Key)
		assert.NotEmpty(t, p.Category)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.UnitLabel)
		assert.Greater(t, p.Price, 0.0, "product %q", p.Key)
	}
}

func TestFind(t *testing.T) {
	p, ok := Find("yogurt_greek")
	require.True(t, ok)
	assert.Equal(t, "Greek Yogurt", p.Name)
	assert.Equal(t, 419.0, p.Price)

	_, ok = Find("no_such_product")
	assert.False(t, ok)
}

func TestKeysCoverCatalog(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, len(Products))
	for _, k := range keys {
		_, ok := Find(k)
		assert.True(t, ok, "key %q missing from catalog", k)
	}
}

func TestMedicineCostsCoverMedicineList(t *testing.T) {
	for _, m := range Medicines {
		if m == "None" {
			continue
		}
		cost, ok := MedicineCost[m]
		require.True(t, ok, "no cost for medicine %q", m)
		assert.Greater(t, cost, 0.0)
	}
}
