package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/ports"
)

type stubNotificationRepo struct {
	stored []*domain.Notification
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) error {
	copied := *n
	r.stored = append(r.stored, &copied)
	return nil
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	// Newest first, matching the Mongo repository's sort.
	var out []*domain.Notification
	for i := len(r.stored) - 1; i >= 0; i-- {
		if r.stored[i].UserID == userID {
			out = append(out, r.stored[i])
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id, userID string) error {
	for _, n := range r.stored {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func TestProcess_StoresNotificationWithIDAndTimestamp(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), ports.NotificationInput{
		UserID:     "client-1",
		DeliveryID: "delivery-1",
		Title:      "Delivery update",
		Message:    "Your package is on the way.",
		Type:       "status_update",
	})
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	if len(repo.stored) != 1 {
		t.Fatalf("stored %d notifications, want 1", len(repo.stored))
	}
	n := repo.stored[0]
	if n.ID == "" {
		t.Error("stored notification has no id")
	}
	if n.CreatedAt.IsZero() {
		t.Error("stored notification has no timestamp")
	}
	if n.Type != domain.NotificationStatusUpdate {
		t.Errorf("type = %s, want status_update", n.Type)
	}
	if n.IsRead {
		t.Error("new notification must start unread")
	}
}

func TestListFor_NewestFirstAndScopedToUser(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, zerolog.Nop())

	for _, in := range []ports.NotificationInput{
		{UserID: "client-1", DeliveryID: "d1", Title: "first"},
		{UserID: "client-2", DeliveryID: "d2", Title: "other user"},
		{UserID: "client-1", DeliveryID: "d1", Title: "second"},
	} {
		if err := svc.Process(context.Background(), in); err != nil {
			t.Fatalf("Process() error: %v", err)
		}
	}

	items, err := svc.ListFor(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("ListFor() error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d notifications, want 2", len(items))
	}
	if items[0].Title != "second" || items[1].Title != "first" {
		t.Error("notifications must be listed newest first")
	}
}

func TestMarkRead_ScopedToOwner(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.NotificationInput{
		UserID: "client-1", DeliveryID: "d1", Title: "hello",
	}); err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	id := repo.stored[0].ID

	// Another user cannot acknowledge it.
	if err := svc.MarkRead(context.Background(), id, "client-2"); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Errorf("error = %v, want ErrNotificationNotFound", err)
	}

	if err := svc.MarkRead(context.Background(), id, "client-1"); err != nil {
		t.Fatalf("MarkRead() error: %v", err)
	}
	if !repo.stored[0].IsRead {
		t.Error("notification not flagged as read")
	}
}
