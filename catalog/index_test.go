package catalog

import (
	"testing"

	"github.com/lahuerta/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Mix (125 gr)", Price: 8500, Category: "Mixes"},
		{ID: 6, Name: "Lechuga Salanova lisa verde", Price: 6000, Category: "Lechugas enteras"},
		{ID: 12, Name: "Chimichurri (180 gr)", Price: 18000, Category: ""},
		{ID: 2, Name: "Mix de hojas verdes (125 gr)", Price: 8500, Category: "Mixes"},
	}
}

func TestFindAfterRebuild(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(sampleProducts())

	p, ok := ix.Find(6)
	require.True(t, ok)
	assert.Equal(t, "Lechuga Salanova lisa verde", p.Name)

	_, ok = ix.Find(99)
	assert.False(t, ok)
}

func TestRebuildReplacesWholesale(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(sampleProducts())
	require.Equal(t, 4, ix.Len())

	ix.Rebuild([]models.Product{{ID: 42, Name: "Mermelada (250 gr)", Price: 18000}})
	assert.Equal(t, 1, ix.Len())

	_, ok := ix.Find(1)
	assert.False(t, ok)
	_, ok = ix.Find(42)
	assert.True(t, ok)
}

func TestRebuildIsIdempotent(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(sampleProducts())
	first := ix.GroupByCategory()

	ix.Rebuild(sampleProducts())
	assert.Equal(t, first, ix.GroupByCategory())
}

func TestGroupByCategorySortsLexicographically(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(sampleProducts())

	groups := ix.GroupByCategory()
	require.Len(t, groups, 3)
	assert.Equal(t, "Lechugas enteras", groups[0].Category)
	assert.Equal(t, "Mixes", groups[1].Category)
	assert.Equal(t, FallbackCategory, groups[2].Category)

	// Products keep catalog order inside their group
	require.Len(t, groups[1].Products, 2)
	assert.Equal(t, 1, groups[1].Products[0].ID)
	assert.Equal(t, 2, groups[1].Products[1].ID)

	// Uncategorized products land under the fallback label
	require.Len(t, groups[2].Products, 1)
	assert.Equal(t, 12, groups[2].Products[0].ID)
}

func TestGroupByCategoryEmptyIndex(t *testing.T) {
	ix := NewIndex()
	assert.Empty(t, ix.GroupByCategory())
}
