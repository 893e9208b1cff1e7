package service

import (
	"sort"
	"strings"

	appErrors "github.com/stocklight/inventory-tracker/internal/errors"
	"github.com/stocklight/inventory-tracker/internal/models"
)

// ListProducts derives the current view: category filter, then search
// narrowing, then a stable sort. The stored order is never touched; callers
// get a fresh slice.
func (s *inventoryService) ListProducts(opts models.ListOptions) ([]models.Product, error) {
	if opts.Category != "" && !opts.Category.Valid() {
		return nil, appErrors.BadRequestError("Unknown category filter")
	}

	if !opts.Sort.Valid() {
		return nil, appErrors.BadRequestError("Unknown sort key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view := make([]models.Product, 0, len(s.products))

	term := strings.ToLower(strings.TrimSpace(opts.Search))

	for _, product := range s.products {
		if opts.Category != "" && product.Category != opts.Category {
			continue
		}

		if term != "" && !strings.Contains(strings.ToLower(product.Name), term) {
			continue
		}

		view = append(view, product)
	}

	switch opts.Sort {
	case models.SortName:
		sort.SliceStable(view, func(i, j int) bool {
			return s.collator.CompareString(view[i].Name, view[j].Name) < 0
		})
	case models.SortPrice:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Price < view[j].Price
		})
	case models.SortQuantity:
		// quantity sorts descending: largest stock first
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Quantity > view[j].Quantity
		})
	case models.SortNone:
		// insertion order
	}

	return view, nil
}

// SearchProducts reports which products a search term makes visible, as ids.
func (s *inventoryService) SearchProducts(term string) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(term))

	ids := make([]int64, 0, len(s.products))

	for _, product := range s.products {
		if needle == "" || strings.Contains(strings.ToLower(product.Name), needle) {
			ids = append(ids, product.ID)
		}
	}

	return ids
}

// Stats always covers the full collection, independent of any active filter.
func (s *inventoryService) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.statsLocked()
}

func (s *inventoryService) statsLocked() models.Stats {
	var stats models.Stats

	for _, product := range s.products {
		stats.TotalItems += product.Quantity
		stats.TotalValue += product.Price * float64(product.Quantity)
	}

	return stats
}
