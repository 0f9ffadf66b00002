package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published by the catalog after each successful mutation.
const (
	TopicItemAdded   = "catalog.item.added"
	TopicItemUpdated = "catalog.item.updated"
	TopicItemDeleted = "catalog.item.deleted"
)

// ItemEvent is the payload for all catalog item topics.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemAdded).
type ItemEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     string    `json:"item_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Price      string    `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Topics lists every topic the catalog publishes.
func Topics() []string {
	return []string{TopicItemAdded, TopicItemUpdated, TopicItemDeleted}
}
