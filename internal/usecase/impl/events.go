package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cafemap/internal/delivery/context"
	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/service"

	"github.com/google/uuid"
)

// publishCafeEvent publishes a catalog event after the change is durable.
// Publishing is best effort: failures are logged and never undo the change.
func publishCafeEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType service.CatalogEventType, cafe *entity.Cafe) {
	publishEvent(ctx, publisher, logger, &service.CatalogEvent{
		Type:     eventType,
		CafeID:   cafe.ID.String(),
		CafeSlug: cafe.Slug,
		CafeName: cafe.Name,
	})
}

func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.CatalogEvent) {
	if publisher == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := publisher.PublishCatalogEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish catalog event",
			slog.String("type", string(event.Type)),
			slog.String("cafe_id", event.CafeID),
			slog.Any("error", err),
		)
	}
}
