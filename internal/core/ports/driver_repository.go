package ports

import (
	"context"

	"github.com/colisgo/delivery-platform/internal/core/domain"
)

// DriverRepository defines persistence operations for courier profiles.
type DriverRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Driver, error)
	// ListOnline returns verified drivers currently marked online.
	ListOnline(ctx context.Context) ([]*domain.Driver, error)
	// UpdateRating overwrites the driver's aggregate rating and delivery count.
	UpdateRating(ctx context.Context, id string, rating float64, totalDeliveries int) error
}
