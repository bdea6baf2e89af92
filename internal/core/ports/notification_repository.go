package ports

import (
	"context"

	"github.com/colisgo/delivery-platform/internal/core/domain"
)

// NotificationRepository defines persistence operations for in-app notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	// MarkRead flags a notification as read. The userID guard prevents one
	// user from acknowledging another user's notifications.
	MarkRead(ctx context.Context, id, userID string) error
}
