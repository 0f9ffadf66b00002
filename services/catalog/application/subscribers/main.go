package subscribers

import (
	"context"
	"fmt"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	domainevents "github.com/ghuser/wardrobe/services/catalog/domain/events"
)

// Register subscribes activity to every catalog topic on a.EventBus.
// Handler failures that survive the bus retries are logged and sent to Sentry.
// Subscriptions end when ctx is cancelled or the bus is closed.
func Register(ctx context.Context, a *app.Application, activity *ActivityLog) error {
	topics := domainevents.Topics()
	for _, topic := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, activity.Handler(topic))
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
				telemetry.CaptureError(ctx, err, map[string]string{"topic": topic})
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}
