package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/ports"
)

// recordingService captures processed notifications in arrival order.
type recordingService struct {
	mu        sync.Mutex
	processed []ports.NotificationInput
	done      chan struct{}
	expect    int
}

func newRecordingService(expect int) *recordingService {
	return &recordingService{done: make(chan struct{}), expect: expect}
}

func (s *recordingService) Process(_ context.Context, in ports.NotificationInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed = append(s.processed, in)
	if len(s.processed) == s.expect {
		close(s.done)
	}
	return nil
}

func (s *recordingService) ListFor(context.Context, string) ([]*domain.Notification, error) {
	return nil, nil
}

func (s *recordingService) MarkRead(context.Context, string, string) error {
	return nil
}

func (s *recordingService) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notifications to be processed")
	}
}

func TestDispatcher_ProcessesAllNotifications(t *testing.T) {
	svc := newRecordingService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.NotificationInput{DeliveryID: "d1", UserID: "u1", Message: "one"})
	d.Enqueue(ports.NotificationInput{DeliveryID: "d2", UserID: "u2", Message: "two"})
	d.Enqueue(ports.NotificationInput{DeliveryID: "d3", UserID: "u3", Message: "three"})

	svc.wait(t)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.processed) != 3 {
		t.Fatalf("expected 3 processed notifications, got %d", len(svc.processed))
	}
}

func TestDispatcher_PerDeliveryOrdering(t *testing.T) {
	const n = 20
	svc := newRecordingService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Enqueue(ports.NotificationInput{
			DeliveryID: "same-delivery",
			UserID:     "u1",
			Message:    string(rune('a' + i)),
		})
	}

	svc.wait(t)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i := 0; i < n; i++ {
		want := string(rune('a' + i))
		if svc.processed[i].Message != want {
			t.Fatalf("notification %d out of order: expected %q, got %q", i, want, svc.processed[i].Message)
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, newRecordingService(0), zerolog.Nop())

	first := d.shardIndex("delivery-abc")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("delivery-abc"); got != first {
			t.Fatalf("shard index not stable: expected %d, got %d", first, got)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}
