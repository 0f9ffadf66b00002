package models

import (
	"testing"
	"time"
)

func TestNewItem(t *testing.T) {
	price := PriceFromInt(15)

	t.Run("returns item with non-empty ID", func(t *testing.T) {
		item := NewItem("shirt", "tops", price, "plain")
		if item.ID == "" {
			t.Fatal("expected non-empty ID")
		}
	})

	t.Run("keeps fields as entered", func(t *testing.T) {
		item := NewItem(" shirt ", "Tops", price, "")
		if item.Name != " shirt " {
			t.Fatalf("expected Name %q, got %q", " shirt ", item.Name)
		}
		if item.Category != "Tops" {
			t.Fatalf("expected Category %q, got %q", "Tops", item.Category)
		}
		if item.Description != "" {
			t.Fatalf("expected empty Description, got %q", item.Description)
		}
		if item.Price.String() != "15" {
			t.Fatalf("expected Price %q, got %q", "15", item.Price.String())
		}
	})

	t.Run("sets CreatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item := NewItem("shirt", "tops", price, "plain")
		after := time.Now().UTC()
		if item.CreatedAt.Before(before) || item.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", item.CreatedAt, before, after)
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		seen := make(map[ItemID]bool)
		for i := 0; i < 100; i++ {
			item := NewItem("shirt", "tops", price, "plain")
			if seen[item.ID] {
				t.Fatalf("duplicate ID %q", item.ID)
			}
			seen[item.ID] = true
		}
	})
}

func TestItem_InCategory(t *testing.T) {
	item := Item{Category: "Category1"}
	tests := []struct {
		query string
		want  bool
	}{
		{"category1", true},
		{"CATEGORY1", true},
		{"Category1", true},
		{"category", false},
		{"category12", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := item.InCategory(tt.query); got != tt.want {
			t.Errorf("InCategory(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSeedItems(t *testing.T) {
	seed := SeedItems()
	if len(seed) != 2 {
		t.Fatalf("expected 2 seed items, got %d", len(seed))
	}
	if seed[0].ID != "1" || seed[0].Category != "category1" || seed[0].Price.String() != "20" {
		t.Errorf("unexpected first seed item: %+v", seed[0])
	}
	if seed[1].ID != "2" || seed[1].Category != "category2" || seed[1].Price.String() != "50" {
		t.Errorf("unexpected second seed item: %+v", seed[1])
	}
}
