package ports

import (
	"context"

	"github.com/Gunvolt24/shopify_cod/internal/domain"
)

// EventPublisher — публикация события о созданном заказе (best effort).
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error
	Close() error
}
