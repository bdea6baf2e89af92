package ports

import (
	"context"
	"time"

	"github.com/colisgo/delivery-platform/internal/core/domain"
)

// DeliveryRepository defines persistence operations for delivery requests.
// Implementations must preserve creation order on list queries so that
// "first active match" semantics stay deterministic.
type DeliveryRepository interface {
	Create(ctx context.Context, d *domain.DeliveryRequest) error
	FindByID(ctx context.Context, id string) (*domain.DeliveryRequest, error)
	// ListByUser returns every delivery where userID is the requester or the
	// assigned driver, ordered by creation time ascending. All statuses are
	// included, terminal ones too.
	ListByUser(ctx context.Context, userID string) ([]*domain.DeliveryRequest, error)
	// FindActiveByUser returns the oldest delivery involving userID whose
	// status is accepted, picked_up or in_transit.
	// Returns domain.ErrNoActiveDelivery when there is none.
	FindActiveByUser(ctx context.Context, userID string) (*domain.DeliveryRequest, error)
	// AssignDriver atomically attaches the driver and moves the delivery to
	// the accepted status.
	AssignDriver(ctx context.Context, id, driverID string) error
	// UpdateStatus sets the new status. deliveredAt and finalPrice are only
	// written when non-nil (set together on the delivered transition).
	UpdateStatus(ctx context.Context, id string, status domain.DeliveryStatus, deliveredAt *time.Time, finalPrice *float64) error
	// SetRating records the post-delivery driver rating and comment.
	SetRating(ctx context.Context, id string, rating int, comment string) error
}
