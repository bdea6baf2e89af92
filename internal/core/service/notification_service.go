package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/ports"
)

type notificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, log: log}
}

// Process materialises a single notification. Called by dispatcher workers,
// one at a time per delivery.
func (s *notificationService) Process(ctx context.Context, input ports.NotificationInput) error {
	n := &domain.Notification{
		ID:         uuid.NewString(),
		UserID:     input.UserID,
		DeliveryID: input.DeliveryID,
		Title:      input.Title,
		Message:    input.Message,
		Type:       domain.NotificationType(input.Type),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		return fmt.Errorf("process notification: %w", err)
	}

	s.log.Debug().
		Str("user_id", input.UserID).
		Str("delivery_id", input.DeliveryID).
		Str("type", input.Type).
		Msg("notification stored")

	return nil
}

func (s *notificationService) ListFor(ctx context.Context, userID string) ([]*domain.Notification, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID string) error {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
