package repositories

import (
	"context"

	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

// ItemRepository is the storage interface for the catalog.
// The domain layer owns this interface; infrastructure implements it.
// Implementations keep items in insertion order and hand out copies, never
// references into their own storage.
type ItemRepository interface {
	// Save appends a new item. Returns ErrItemAlreadyExists if the ID is taken.
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id models.ItemID) (*models.Item, error)

	// List returns every item in insertion order.
	List(ctx context.Context) ([]models.Item, error)

	// Update replaces the fields of an existing item in place, keeping its position.
	Update(ctx context.Context, item *models.Item) error

	// Delete removes an item by ID. Returns ErrItemNotFound if it is absent.
	Delete(ctx context.Context, id models.ItemID) error

	Exists(ctx context.Context, id models.ItemID) (bool, error)
	Count(ctx context.Context) (int, error)

	// Ping reports whether the store can serve requests.
	Ping(ctx context.Context) error
}
