package catalog

import (
	"sort"
	"sync"

	"github.com/lahuerta/storefront-api/models"
)

// CategoryGroup is one category and its products in catalog order.
type CategoryGroup struct {
	Category string           `json:"category"`
	Products []models.Product `json:"products"`
}

// Index is the in-memory product lookup. Rebuild swaps the whole catalog at
// once; readers never see a half-populated index.
type Index struct {
	mu       sync.RWMutex
	byID     map[int]models.Product
	products []models.Product
}

func NewIndex() *Index {
	return &Index{byID: map[int]models.Product{}}
}

// Rebuild replaces the lookup wholesale with the given products.
func (ix *Index) Rebuild(products []models.Product) {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ix.mu.Lock()
	ix.byID = byID
	ix.products = append([]models.Product(nil), products...)
	ix.mu.Unlock()
}

// Find returns the product for id, or ok=false when the catalog has no such
// record.
func (ix *Index) Find(id int) (models.Product, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	p, ok := ix.byID[id]
	return p, ok
}

// Len reports how many products the index currently holds.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.products)
}

// Products returns the catalog in source order.
func (ix *Index) Products() []models.Product {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return append([]models.Product(nil), ix.products...)
}

// GroupByCategory buckets the catalog by category, categories sorted
// lexicographically so rendering order is deterministic. Products without a
// category land under FallbackCategory.
func (ix *Index) GroupByCategory() []CategoryGroup {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	buckets := map[string][]models.Product{}
	for _, p := range ix.products {
		category := p.Category
		if category == "" {
			category = FallbackCategory
		}
		buckets[category] = append(buckets[category], p)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]CategoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, CategoryGroup{Category: name, Products: buckets[name]})
	}
	return groups
}
