// Package memory keeps the catalog in process memory. It is the only
// repositories.ItemRepository implementation: the catalog is discarded when the
// process exits.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/logger"
	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	domainevents "github.com/ghuser/wardrobe/services/catalog/domain/events"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

// ItemRepository implements repositories.ItemRepository over an ordered slice.
// index maps an ItemID to its position in items and is rebuilt on delete.
type ItemRepository struct {
	mu    sync.RWMutex
	items []models.Item
	index map[models.ItemID]int
	bus   *events.EventBus
	log   logger.Logger
}

// NewItemRepository returns an empty ItemRepository. The bus, when non-nil, receives
// an ItemEvent after every successful Save, Update and Delete.
func NewItemRepository(bus *events.EventBus, log logger.Logger) *ItemRepository {
	return &ItemRepository{
		index: make(map[models.ItemID]int),
		bus:   bus,
		log:   log,
	}
}

// Seed appends items without publishing events. Items whose ID is already
// present are rejected with ErrItemAlreadyExists.
func (r *ItemRepository) Seed(items ...models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		if _, ok := r.index[item.ID]; ok {
			return fmt.Errorf("seed item %s: %w", item.ID, catalogdomain.ErrItemAlreadyExists)
		}
		r.index[item.ID] = len(r.items)
		r.items = append(r.items, item)
	}
	return nil
}

// Save appends a new Item and publishes an ItemEvent on TopicItemAdded.
// Returns ErrItemAlreadyExists if the ID is already present.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	if _, ok := r.index[item.ID]; ok {
		r.mu.Unlock()
		return catalogdomain.ErrItemAlreadyExists
	}
	r.index[item.ID] = len(r.items)
	r.items = append(r.items, *item)
	r.mu.Unlock()

	r.publish(ctx, domainevents.TopicItemAdded, *item)
	return nil
}

// GetByID returns a copy of the Item with the given ID. Returns ErrItemNotFound if absent.
func (r *ItemRepository) GetByID(_ context.Context, id models.ItemID) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.index[id]
	if !ok {
		return nil, catalogdomain.ErrItemNotFound
	}
	item := r.items[pos]
	return &item, nil
}

// List returns a copy of every Item in insertion order.
func (r *ItemRepository) List(_ context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

// Update overwrites an existing Item in place and publishes on TopicItemUpdated.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	pos, ok := r.index[item.ID]
	if !ok {
		r.mu.Unlock()
		return catalogdomain.ErrItemNotFound
	}
	r.items[pos] = *item
	r.mu.Unlock()

	r.publish(ctx, domainevents.TopicItemUpdated, *item)
	return nil
}

// Delete removes an Item by ID and publishes on TopicItemDeleted.
// Returns ErrItemNotFound if absent.
func (r *ItemRepository) Delete(ctx context.Context, id models.ItemID) error {
	r.mu.Lock()
	pos, ok := r.index[id]
	if !ok {
		r.mu.Unlock()
		return catalogdomain.ErrItemNotFound
	}
	removed := r.items[pos]
	r.items = slices.Delete(r.items, pos, pos+1)
	delete(r.index, id)
	for i := pos; i < len(r.items); i++ {
		r.index[r.items[i].ID] = i
	}
	r.mu.Unlock()

	r.publish(ctx, domainevents.TopicItemDeleted, removed)
	return nil
}

// Exists reports whether an Item with the given ID is in the catalog.
func (r *ItemRepository) Exists(_ context.Context, id models.ItemID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[id]
	return ok, nil
}

// Count returns the number of items in the catalog.
func (r *ItemRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

// Ping always succeeds; the catalog lives in this process.
func (r *ItemRepository) Ping(_ context.Context) error {
	return nil
}

// publish is best-effort: the mutation has already happened, so a failed
// publish is logged rather than returned.
func (r *ItemRepository) publish(ctx context.Context, topic string, item models.Item) {
	if r.bus == nil {
		return
	}
	event := domainevents.ItemEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID.String(),
		Name:       item.Name,
		Category:   item.Category,
		Price:      item.Price.String(),
		OccurredAt: time.Now().UTC(),
	}
	if err := r.bus.PublishJSON(ctx, topic, event.EventID.String(), event); err != nil && r.log != nil {
		r.log.WarnContext(ctx, "publish catalog event failed",
			"topic", topic, "item_id", item.ID, "error", err)
	}
}
