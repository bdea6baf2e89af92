package ports

import (
	"context"

	"github.com/colisgo/delivery-platform/internal/core/domain"
)

// NotificationInput is the DTO handed from the lifecycle layer to the
// notification pipeline.
type NotificationInput struct {
	UserID     string
	DeliveryID string
	Title      string
	Message    string
	Type       string
}

// NotificationService materialises and serves in-app notifications.
type NotificationService interface {
	// Process persists a single notification. Called by the dispatcher workers.
	Process(ctx context.Context, input NotificationInput) error
	ListFor(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}
