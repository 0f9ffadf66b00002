// Package subscribers consumes catalog events from the EventBus.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/wardrobe/pkg/logger"
	domainevents "github.com/ghuser/wardrobe/services/catalog/domain/events"
)

const defaultActivitySize = 50

// Activity is one catalog mutation as seen by the EventBus.
type Activity struct {
	Topic string
	Event domainevents.ItemEvent
}

// ActivityLog is a bounded, newest-last read model of catalog events.
// Events are deduplicated by EventID so redelivery is harmless.
type ActivityLog struct {
	mu      sync.RWMutex
	entries []Activity
	seen    map[uuid.UUID]struct{}
	size    int

	log      logger.Logger
	received metric.Int64Counter
}

// NewActivityLog returns an ActivityLog that keeps the last size events.
// A non-positive size falls back to 50.
func NewActivityLog(size int, log logger.Logger) *ActivityLog {
	if size <= 0 {
		size = defaultActivitySize
	}
	a := &ActivityLog{
		seen: make(map[uuid.UUID]struct{}, size),
		size: size,
		log:  log,
	}
	counter, err := otel.Meter("github.com/ghuser/wardrobe/services/catalog/subscribers").
		Int64Counter("catalog.events.received", metric.WithDescription("Catalog events consumed from the event bus"))
	if err != nil {
		log.Warn("create catalog.events.received counter", "error", err)
	}
	a.received = counter
	return a
}

// Handler returns the EventBus handler for topic. A payload that is not an
// ItemEvent is returned as an error so the bus retries and then reports it.
func (a *ActivityLog) Handler(topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.ItemEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s event %s: %w", topic, msg.UUID, err)
		}
		if !a.record(Activity{Topic: topic, Event: evt}) {
			a.log.DebugContext(ctx, "duplicate catalog event skipped", "topic", topic, "event_id", evt.EventID)
			return nil
		}
		if a.received != nil {
			a.received.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
		}
		a.log.InfoContext(ctx, "catalog activity",
			"topic", topic,
			"item_id", evt.ItemID,
			"category", evt.Category,
			"price", evt.Price,
		)
		return nil
	}
}

// Recent returns up to n entries, newest first. n <= 0 returns every entry.
func (a *ActivityLog) Recent(n int) []Activity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if n <= 0 || n > len(a.entries) {
		n = len(a.entries)
	}
	out := make([]Activity, 0, n)
	for i := len(a.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, a.entries[i])
	}
	return out
}

// Len returns the number of entries held.
func (a *ActivityLog) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}

// record appends entry unless its EventID was already seen. Reports whether it was added.
func (a *ActivityLog) record(entry Activity) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, dup := a.seen[entry.Event.EventID]; dup {
		return false
	}
	if len(a.entries) == a.size {
		delete(a.seen, a.entries[0].Event.EventID)
		a.entries = a.entries[1:]
	}
	a.entries = append(a.entries, entry)
	a.seen[entry.Event.EventID] = struct{}{}
	return true
}
