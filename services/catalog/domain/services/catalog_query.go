// Package services contains stateless domain services for the catalog bounded context.
// Every function returns a new slice and leaves its input untouched.
package services

import (
	"slices"

	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

// FilterByCategory returns the items whose category equals category ignoring case.
// An empty category returns a copy of items unchanged.
func FilterByCategory(items []models.Item, category string) []models.Item {
	if category == "" {
		return slices.Clone(items)
	}
	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.InCategory(category) {
			out = append(out, item)
		}
	}
	return out
}

// SortByPriceAscending returns items ordered by price, lowest first.
// Items with equal prices keep their relative input order.
func SortByPriceAscending(items []models.Item) []models.Item {
	return SortByPrice(items, models.SortAscending)
}

// SortByPriceDescending returns items ordered by price, highest first.
// Items with equal prices keep their relative input order.
func SortByPriceDescending(items []models.Item) []models.Item {
	return SortByPrice(items, models.SortDescending)
}

// SortByPrice returns a stably sorted copy of items in the given direction.
// Non-numeric prices go last in both directions. SortNone returns a plain copy.
func SortByPrice(items []models.Item, dir models.SortDirection) []models.Item {
	out := slices.Clone(items)
	switch dir {
	case models.SortAscending:
		slices.SortStableFunc(out, func(a, b models.Item) int {
			return a.Price.Cmp(b.Price)
		})
	case models.SortDescending:
		slices.SortStableFunc(out, func(a, b models.Item) int {
			if a.Price.IsNumeric() != b.Price.IsNumeric() {
				return a.Price.Cmp(b.Price)
			}
			return b.Price.Cmp(a.Price)
		})
	}
	return out
}
