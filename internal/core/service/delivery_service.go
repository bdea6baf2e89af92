package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colisgo/delivery-platform/internal/api/metrics"
	"github.com/colisgo/delivery-platform/internal/core/domain"
	"github.com/colisgo/delivery-platform/internal/core/ports"
)

// DedupChecker abstracts the status-event idempotency store (Redis). The
// driver app retries status updates on flaky connections; duplicates are
// skipped silently.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, deliveryID, status string) (bool, error)
	Mark(ctx context.Context, deliveryID, status string) error
}

// Notifier enqueues in-app notifications without blocking the caller.
// Implemented by the queue dispatcher.
type Notifier interface {
	Enqueue(input ports.NotificationInput)
}

// DeliveryService owns the delivery lifecycle: creation, driver assignment,
// status progression and the active/history lookups the app screens consume.
type DeliveryService struct {
	repo     ports.DeliveryRepository
	drivers  ports.DriverRepository
	pricing  ports.PricingService
	dedup    DedupChecker
	notifier Notifier
	logger   zerolog.Logger
}

func NewDeliveryService(
	repo ports.DeliveryRepository,
	drivers ports.DriverRepository,
	pricing ports.PricingService,
	dedup DedupChecker,
	notifier Notifier,
	logger zerolog.Logger,
) *DeliveryService {
	return &DeliveryService{
		repo:     repo,
		drivers:  drivers,
		pricing:  pricing,
		dedup:    dedup,
		notifier: notifier,
		logger:   logger,
	}
}

// Create registers a new delivery request: assigns an id, stamps the creation
// time, prices the request and persists it with status pending. The repository
// is the single source of truth, so a failed write leaves no partial state.
func (s *DeliveryService) Create(ctx context.Context, input ports.CreateDeliveryInput) (*ports.DeliveryResult, error) {
	quote, err := s.pricing.Estimate(ports.QuoteInput{
		PickupAddress:   input.PickupAddress,
		DeliveryAddress: input.DeliveryAddress,
		PackageSize:     input.PackageSize,
		DeliverySpeed:   input.DeliverySpeed,
	})
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	now := time.Now().UTC()
	eta := estimatedDeliveryTime(domain.DeliverySpeed(input.DeliverySpeed), now)

	delivery := &domain.DeliveryRequest{
		ID:                    uuid.NewString(),
		ClientID:              input.ClientID,
		PickupAddress:         toAddress(input.PickupAddress),
		DeliveryAddress:       toAddress(input.DeliveryAddress),
		PackageSize:           domain.PackageSize(input.PackageSize),
		PackageWeightKg:       input.PackageWeightKg,
		PackageDescription:    input.PackageDescription,
		DeliverySpeed:         domain.DeliverySpeed(input.DeliverySpeed),
		EstimatedPrice:        quote.Amount,
		Status:                domain.StatusPending,
		CreatedAt:             now,
		EstimatedDeliveryTime: &eta,
	}

	if err := s.repo.Create(ctx, delivery); err != nil {
		s.logger.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to persist delivery")
		return nil, fmt.Errorf("%w: %v", domain.ErrCreationFailed, err)
	}

	metrics.DeliveriesCreatedTotal.WithLabelValues(input.DeliverySpeed).Inc()
	metrics.EstimatedPriceEuros.Observe(quote.Amount)

	s.logger.Info().
		Str("delivery_id", delivery.ID).
		Str("client_id", input.ClientID).
		Float64("estimated_price", quote.Amount).
		Msg("delivery created")

	s.notifier.Enqueue(ports.NotificationInput{
		UserID:     input.ClientID,
		DeliveryID: delivery.ID,
		Title:      "Delivery request created",
		Message:    fmt.Sprintf("Your request is pending, estimated at %.2f %s.", quote.Amount, quote.Currency),
		Type:       string(domain.NotificationDeliveryRequest),
	})

	return &ports.DeliveryResult{
		ID:                    delivery.ID,
		Status:                string(delivery.Status),
		EstimatedPrice:        quote.Amount,
		Currency:              quote.Currency,
		CreatedAt:             now,
		EstimatedDeliveryTime: eta,
	}, nil
}

// Accept claims a pending delivery for a driver. The requester may hold at
// most one active delivery, and a driver cannot carry two at once.
func (s *DeliveryService) Accept(ctx context.Context, deliveryID, driverID string) error {
	delivery, err := s.repo.FindByID(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("accept delivery: %w", err)
	}

	if delivery.Status != domain.StatusPending {
		return fmt.Errorf("accept delivery: %w (from %s to %s)",
			domain.ErrInvalidTransition, delivery.Status, domain.StatusAccepted)
	}

	for _, userID := range []string{delivery.ClientID, driverID} {
		if _, err := s.repo.FindActiveByUser(ctx, userID); err == nil {
			return fmt.Errorf("accept delivery: user %s: %w", userID, domain.ErrActiveDeliveryExists)
		}
	}

	if err := s.repo.AssignDriver(ctx, deliveryID, driverID); err != nil {
		return fmt.Errorf("accept delivery: %w", err)
	}

	metrics.StatusUpdatesTotal.WithLabelValues(string(domain.StatusAccepted)).Inc()

	s.logger.Info().
		Str("delivery_id", deliveryID).
		Str("driver_id", driverID).
		Msg("delivery accepted")

	s.notifier.Enqueue(ports.NotificationInput{
		UserID:     delivery.ClientID,
		DeliveryID: deliveryID,
		Title:      "Driver assigned",
		Message:    "A driver has accepted your delivery request.",
		Type:       string(domain.NotificationStatusUpdate),
	})

	return nil
}

// UpdateStatus advances a delivery along the lifecycle. Transitions outside
// the state machine are rejected; retransmitted updates are deduplicated and
// silently skipped.
func (s *DeliveryService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) error {
	newStatus := domain.DeliveryStatus(input.Status)

	// pending and accepted are never reachable through a status update:
	// pending only exists at creation, and accepted requires a driver
	// assignment, which goes through Accept with its own guards.
	if newStatus == domain.StatusPending || newStatus == domain.StatusAccepted {
		metrics.StatusErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("update status: %w (%s is not a valid target)", domain.ErrInvalidTransition, newStatus)
	}

	isDup, err := s.dedup.IsDuplicate(ctx, input.DeliveryID, input.Status)
	if err != nil {
		s.logger.Warn().Err(err).Str("delivery_id", input.DeliveryID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.logger.Debug().Str("delivery_id", input.DeliveryID).Str("status", input.Status).Msg("duplicate status update skipped")
		return nil
	}

	delivery, err := s.repo.FindByID(ctx, input.DeliveryID)
	if err != nil {
		metrics.StatusErrorsTotal.WithLabelValues("delivery_not_found").Inc()
		return fmt.Errorf("update status: %w", err)
	}

	if input.ActorID != "" && !delivery.Involves(input.ActorID) {
		return fmt.Errorf("update status: %w", domain.ErrForbidden)
	}

	if !delivery.Status.CanTransitionTo(newStatus) {
		metrics.StatusErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("update status: %w (from %s to %s)", domain.ErrInvalidTransition, delivery.Status, newStatus)
	}

	var deliveredAt *time.Time
	var finalPrice *float64
	if newStatus == domain.StatusDelivered {
		now := time.Now().UTC()
		deliveredAt = &now
		if delivery.FinalPrice == 0 {
			price := delivery.EstimatedPrice
			finalPrice = &price
		}
	}

	if err := s.repo.UpdateStatus(ctx, input.DeliveryID, newStatus, deliveredAt, finalPrice); err != nil {
		metrics.StatusErrorsTotal.WithLabelValues("update_failed").Inc()
		return fmt.Errorf("update status: %w", err)
	}

	// Mark only after the write landed. Marking earlier would make a retry of
	// a failed write look like a duplicate and silently drop the transition.
	if markErr := s.dedup.Mark(ctx, input.DeliveryID, input.Status); markErr != nil {
		s.logger.Warn().Err(markErr).Str("delivery_id", input.DeliveryID).Msg("failed to set dedup key")
	}

	metrics.StatusUpdatesTotal.WithLabelValues(input.Status).Inc()

	s.logger.Info().
		Str("delivery_id", input.DeliveryID).
		Str("from", string(delivery.Status)).
		Str("to", input.Status).
		Msg("delivery status updated")

	s.notifyStatusChange(delivery, newStatus)
	return nil
}

// Rate records a post-delivery driver rating and folds it into the driver's
// aggregate score. Only the requester of a delivered request may rate it.
func (s *DeliveryService) Rate(ctx context.Context, input ports.RateDeliveryInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return fmt.Errorf("rate delivery: %w", domain.ErrInvalidRating)
	}

	delivery, err := s.repo.FindByID(ctx, input.DeliveryID)
	if err != nil {
		return fmt.Errorf("rate delivery: %w", err)
	}
	if delivery.ClientID != input.ActorID {
		return fmt.Errorf("rate delivery: %w", domain.ErrForbidden)
	}
	if delivery.Status != domain.StatusDelivered {
		return fmt.Errorf("rate delivery: %w", domain.ErrNotDelivered)
	}

	if err := s.repo.SetRating(ctx, input.DeliveryID, input.Rating, input.Comment); err != nil {
		return fmt.Errorf("rate delivery: %w", err)
	}

	// Reflect the rating onto the driver's aggregate. Non-fatal: the rating
	// on the delivery is already the source record.
	if err := s.applyDriverRating(ctx, delivery.DriverID, input.Rating); err != nil {
		s.logger.Warn().Err(err).Str("driver_id", delivery.DriverID).Msg("failed to update driver aggregate rating")
	}

	s.logger.Info().
		Str("delivery_id", input.DeliveryID).
		Int("rating", input.Rating).
		Msg("delivery rated")

	return nil
}

// Get returns a single delivery, restricted to its participants.
func (s *DeliveryService) Get(ctx context.Context, deliveryID, userID string) (*domain.DeliveryRequest, error) {
	delivery, err := s.repo.FindByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if !delivery.Involves(userID) {
		return nil, fmt.Errorf("get delivery: %w", domain.ErrForbidden)
	}
	return delivery, nil
}

// ActiveFor returns the user's current active delivery: the oldest record
// involving the user whose status is accepted, picked_up or in_transit.
func (s *DeliveryService) ActiveFor(ctx context.Context, userID string) (*domain.DeliveryRequest, error) {
	delivery, err := s.repo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("active delivery: %w", err)
	}
	return delivery, nil
}

// HistoryFor returns every delivery involving the user in creation order,
// terminal records included.
func (s *DeliveryService) HistoryFor(ctx context.Context, userID string) ([]*domain.DeliveryRequest, error) {
	deliveries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("delivery history: %w", err)
	}
	return deliveries, nil
}

func (s *DeliveryService) notifyStatusChange(delivery *domain.DeliveryRequest, status domain.DeliveryStatus) {
	message := statusMessage(status)
	recipients := []string{delivery.ClientID}
	if delivery.DriverID != "" {
		recipients = append(recipients, delivery.DriverID)
	}
	for _, userID := range recipients {
		s.notifier.Enqueue(ports.NotificationInput{
			UserID:     userID,
			DeliveryID: delivery.ID,
			Title:      "Delivery update",
			Message:    message,
			Type:       string(domain.NotificationStatusUpdate),
		})
	}
}

func (s *DeliveryService) applyDriverRating(ctx context.Context, driverID string, rating int) error {
	if driverID == "" {
		return nil
	}
	driver, err := s.drivers.FindByID(ctx, driverID)
	if err != nil {
		return err
	}
	total := driver.TotalDeliveries + 1
	aggregate := (driver.Rating*float64(driver.TotalDeliveries) + float64(rating)) / float64(total)
	return s.drivers.UpdateRating(ctx, driverID, aggregate, total)
}

func statusMessage(status domain.DeliveryStatus) string {
	switch status {
	case domain.StatusPickedUp:
		return "Your package has been picked up."
	case domain.StatusInTransit:
		return "Your package is on the way."
	case domain.StatusDelivered:
		return "Your package has been delivered."
	case domain.StatusCancelled:
		return "The delivery has been cancelled."
	default:
		return fmt.Sprintf("Delivery status changed to %s.", status)
	}
}

// estimatedDeliveryTime projects an ETA from the service tier.
func estimatedDeliveryTime(speed domain.DeliverySpeed, from time.Time) time.Time {
	switch speed {
	case domain.SpeedExpress:
		return from.Add(1 * time.Hour)
	default: // standard or unknown
		return from.Add(3 * time.Hour)
	}
}

func toAddress(in ports.AddressInput) domain.Address {
	addr := domain.Address{
		Label:      in.Label,
		Street:     in.Street,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
	if in.Latitude != nil && in.Longitude != nil {
		addr.Coordinates = &domain.Coordinates{
			Latitude:  *in.Latitude,
			Longitude: *in.Longitude,
		}
	}
	return addr
}
