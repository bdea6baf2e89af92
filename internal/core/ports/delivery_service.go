package ports

import (
	"context"
	"time"

	"github.com/colisgo/delivery-platform/internal/core/domain"
)

// AddressInput holds a physical location as submitted by the app. Latitude
// and Longitude are optional; when both ends of a delivery carry them the
// price is computed over the real distance.
type AddressInput struct {
	Label      string
	Street     string
	City       string
	PostalCode string
	Country    string
	Latitude   *float64
	Longitude  *float64
}

// CreateDeliveryInput carries all data needed to create a delivery request.
// ID, status, creation time and price are assigned by the service.
type CreateDeliveryInput struct {
	ClientID           string
	PickupAddress      AddressInput
	DeliveryAddress    AddressInput
	PackageSize        string
	PackageWeightKg    float64
	PackageDescription string
	DeliverySpeed      string
}

// DeliveryResult is returned by the service after creating a delivery.
type DeliveryResult struct {
	ID                    string
	Status                string
	EstimatedPrice        float64
	Currency              string
	CreatedAt             time.Time
	EstimatedDeliveryTime time.Time
}

// UpdateStatusInput carries a status change request.
type UpdateStatusInput struct {
	DeliveryID string
	Status     string
	// ActorID identifies the user requesting the change; it must be a
	// participant of the delivery.
	ActorID string
}

// RateDeliveryInput carries a post-delivery driver rating.
type RateDeliveryInput struct {
	DeliveryID string
	ActorID    string
	Rating     int
	Comment    string
}

// DeliveryService defines use-case operations for the delivery lifecycle.
type DeliveryService interface {
	Create(ctx context.Context, input CreateDeliveryInput) (*DeliveryResult, error)
	// Accept claims a pending delivery for a driver.
	Accept(ctx context.Context, deliveryID, driverID string) error
	UpdateStatus(ctx context.Context, input UpdateStatusInput) error
	Rate(ctx context.Context, input RateDeliveryInput) error
	// Get returns a single delivery, restricted to its participants.
	Get(ctx context.Context, deliveryID, userID string) (*domain.DeliveryRequest, error)
	// ActiveFor returns the user's current active delivery, or
	// domain.ErrNoActiveDelivery.
	ActiveFor(ctx context.Context, userID string) (*domain.DeliveryRequest, error)
	// HistoryFor returns every delivery involving the user, oldest first.
	HistoryFor(ctx context.Context, userID string) ([]*domain.DeliveryRequest, error)
}
