package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ItemID identifies an Item for the lifetime of the process.
type ItemID string

// NewItemID returns a fresh random ItemID.
func NewItemID() ItemID {
	return ItemID(uuid.NewString())
}

// String returns the underlying string value.
func (id ItemID) String() string {
	return string(id)
}

// Item is a single clothing entry in the catalog.
// ID is assigned once in NewItem and never changes afterwards.
type Item struct {
	ID          ItemID
	Name        string
	Category    string
	Price       Price
	Description string
	CreatedAt   time.Time
}

// NewItem constructs an Item with a generated ID and current timestamp.
// Name, category and description are kept exactly as entered.
func NewItem(name, category string, price Price, description string) *Item {
	return &Item{
		ID:          NewItemID(),
		Name:        name,
		Category:    category,
		Price:       price,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// InCategory reports whether the item's category equals category, ignoring case.
func (i Item) InCategory(category string) bool {
	return strings.ToLower(i.Category) == strings.ToLower(category)
}
