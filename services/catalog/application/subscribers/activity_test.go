package subscribers

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/logger"
	domainevents "github.com/ghuser/wardrobe/services/catalog/domain/events"
)

func nopLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func eventMessage(t *testing.T, evt domainevents.ItemEvent) *message.Message {
	t.Helper()
	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return message.NewMessage(evt.EventID.String(), data)
}

func newEvent(itemID string) domainevents.ItemEvent {
	return domainevents.ItemEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     itemID,
		Name:       "shirt",
		Category:   "tops",
		Price:      "15",
		OccurredAt: time.Now().UTC(),
	}
}

func TestActivityLog_Handler(t *testing.T) {
	ctx := context.Background()
	a := NewActivityLog(10, nopLogger())
	h := a.Handler(domainevents.TopicItemAdded)

	evt := newEvent("1")
	if err := h(ctx, eventMessage(t, evt)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	// redelivery of the same event is a no-op
	if err := h(ctx, eventMessage(t, evt)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if a.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", a.Len())
	}
	got := a.Recent(0)[0]
	if got.Topic != domainevents.TopicItemAdded || got.Event.ItemID != "1" {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestActivityLog_HandlerRejectsBadPayload(t *testing.T) {
	a := NewActivityLog(10, nopLogger())
	err := a.Handler(domainevents.TopicItemDeleted)(context.Background(), message.NewMessage("x", []byte("not json")))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if a.Len() != 0 {
		t.Fatalf("bad payload must not be recorded, got %d entries", a.Len())
	}
}

func TestActivityLog_Bounded(t *testing.T) {
	ctx := context.Background()
	a := NewActivityLog(3, nopLogger())
	h := a.Handler(domainevents.TopicItemAdded)

	var first domainevents.ItemEvent
	for i := 0; i < 5; i++ {
		evt := newEvent(fmt.Sprint(i))
		if i == 0 {
			first = evt
		}
		if err := h(ctx, eventMessage(t, evt)); err != nil {
			t.Fatalf("handler: %v", err)
		}
	}

	recent := a.Recent(0)
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	for i, want := range []string{"4", "3", "2"} {
		if recent[i].Event.ItemID != want {
			t.Errorf("entry %d: got item %s, want %s", i, recent[i].Event.ItemID, want)
		}
	}
	if got := a.Recent(2); len(got) != 2 || got[0].Event.ItemID != "4" {
		t.Errorf("Recent(2) = %+v", got)
	}

	// an evicted event is no longer remembered as seen
	if err := h(ctx, eventMessage(t, first)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if a.Recent(1)[0].Event.ItemID != "0" {
		t.Error("expected evicted event to be accepted again")
	}
}

func TestNewActivityLog_DefaultSize(t *testing.T) {
	a := NewActivityLog(0, nopLogger())
	if a.size != defaultActivitySize {
		t.Fatalf("expected size %d, got %d", defaultActivitySize, a.size)
	}
}

func TestRegister_ReceivesPublishedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := nopLogger()
	bus := events.NewEventBus(log)
	defer bus.Close() //nolint:errcheck

	activity := NewActivityLog(10, log)
	if err := Register(ctx, &app.Application{Logger: log, EventBus: bus}, activity); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, topic := range domainevents.Topics() {
		evt := newEvent(topic)
		if err := bus.PublishJSON(ctx, topic, evt.EventID.String(), evt); err != nil {
			t.Fatalf("publish %s: %v", topic, err)
		}
	}

	deadline := time.After(2 * time.Second)
	for activity.Len() < len(domainevents.Topics()) {
		select {
		case <-deadline:
			t.Fatalf("expected %d entries, got %d", len(domainevents.Topics()), activity.Len())
		case <-time.After(10 * time.Millisecond):
		}
	}
	for _, a := range activity.Recent(0) {
		if a.Topic != a.Event.ItemID {
			t.Errorf("event for %s delivered on %s", a.Event.ItemID, a.Topic)
		}
	}
}

func TestRegister_ClosedBus(t *testing.T) {
	log := nopLogger()
	bus := events.NewEventBus(log)
	_ = bus.Close()

	err := Register(context.Background(), &app.Application{Logger: log, EventBus: bus}, NewActivityLog(1, log))
	if err == nil {
		t.Fatal("expected error on closed bus")
	}
}
