package models

import "time"

// SeedItems returns the two demonstration items the catalog starts with.
func SeedItems() []Item {
	now := time.Now().UTC()
	return []Item{
		{
			ID:          "1",
			Name:        "product1",
			Category:    "category1",
			Price:       PriceFromInt(20),
			Description: "description1",
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "product2",
			Category:    "category2",
			Price:       PriceFromInt(50),
			Description: "description2",
			CreatedAt:   now,
		},
	}
}
