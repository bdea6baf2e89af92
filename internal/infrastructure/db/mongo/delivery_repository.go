package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/colisgo/delivery-platform/internal/core/domain"
)

const collectionDeliveries = "deliveries"

// DeliveryRepository implements ports.DeliveryRepository on MongoDB. Creation
// order is preserved by sorting on created_at; every list and active lookup
// relies on it.
type DeliveryRepository struct {
	col *mongo.Collection
}

func NewDeliveryRepository(db *mongo.Database) *DeliveryRepository {
	return &DeliveryRepository{col: db.Collection(collectionDeliveries)}
}

// Create inserts a new delivery document.
func (r *DeliveryRepository) Create(ctx context.Context, d *domain.DeliveryRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, d)
	return err
}

// FindByID retrieves a delivery by its identifier.
func (r *DeliveryRepository) FindByID(ctx context.Context, id string) (*domain.DeliveryRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.DeliveryRequest
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDeliveryNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListByUser returns every delivery where userID is requester or driver,
// oldest first.
func (r *DeliveryRepository) ListByUser(ctx context.Context, userID string) ([]*domain.DeliveryRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := participantFilter(userID)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var deliveries []*domain.DeliveryRequest
	if err := cursor.All(ctx, &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

// FindActiveByUser returns the oldest active delivery involving userID.
func (r *DeliveryRepository) FindActiveByUser(ctx context.Context, userID string) (*domain.DeliveryRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	statuses := make([]string, 0, 3)
	for _, s := range domain.ActiveStatuses() {
		statuses = append(statuses, string(s))
	}

	filter := bson.M{
		"$and": bson.A{
			participantFilter(userID),
			bson.M{"status": bson.M{"$in": statuses}},
		},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})

	var d domain.DeliveryRequest
	err := r.col.FindOne(ctx, filter, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoActiveDelivery
		}
		return nil, err
	}
	return &d, nil
}

// AssignDriver atomically attaches the driver and moves the delivery to accepted.
func (r *DeliveryRepository) AssignDriver(ctx context.Context, id, driverID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"driver_id": driverID,
		"status":    string(domain.StatusAccepted),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrDeliveryNotFound
	}
	return nil
}

// UpdateStatus sets the new status, optionally stamping the actual delivery
// time and final price on the delivered transition.
func (r *DeliveryRepository) UpdateStatus(ctx context.Context, id string, status domain.DeliveryStatus, deliveredAt *time.Time, finalPrice *float64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	fields := bson.M{"status": string(status)}
	if deliveredAt != nil {
		fields["actual_delivery_time"] = deliveredAt.UTC()
	}
	if finalPrice != nil {
		fields["final_price"] = *finalPrice
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrDeliveryNotFound
	}
	return nil
}

// SetRating records the post-delivery driver rating and comment.
func (r *DeliveryRepository) SetRating(ctx context.Context, id string, rating int, comment string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"driver_rating":  rating,
		"driver_comment": comment,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrDeliveryNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the participant and active lookups.
func (r *DeliveryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "driver_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func participantFilter(userID string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"client_id": userID},
		bson.M{"driver_id": userID},
	}}
}
