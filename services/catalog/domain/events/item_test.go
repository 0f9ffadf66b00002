package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/catalog/domain/events"
)

func TestItemEvent_JSONFieldNames(t *testing.T) {
	evt := events.ItemEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     "1",
		Name:       "product1",
		Category:   "category1",
		Price:      "20",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "name", "category", "price", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopics(t *testing.T) {
	topics := events.Topics()
	if len(topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(topics))
	}
	seen := map[string]bool{}
	for _, topic := range topics {
		if topic == "" {
			t.Fatal("topic must not be empty")
		}
		if seen[topic] {
			t.Fatalf("duplicate topic %q", topic)
		}
		seen[topic] = true
	}
	if !seen[events.TopicItemAdded] || !seen[events.TopicItemDeleted] || !seen[events.TopicItemUpdated] {
		t.Errorf("missing expected topics: %v", topics)
	}
}
