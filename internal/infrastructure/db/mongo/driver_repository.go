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

const collectionDrivers = "drivers"

// DriverRepository implements ports.DriverRepository on MongoDB.
type DriverRepository struct {
	col *mongo.Collection
}

func NewDriverRepository(db *mongo.Database) *DriverRepository {
	return &DriverRepository{col: db.Collection(collectionDrivers)}
}

func (r *DriverRepository) FindByID(ctx context.Context, id string) (*domain.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Driver
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDriverNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListOnline returns verified drivers currently marked online, best rated first.
func (r *DriverRepository) ListOnline(ctx context.Context) ([]*domain.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"is_online": true, "is_verified": true}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drivers []*domain.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// UpdateRating overwrites the driver's aggregate rating and delivery count.
func (r *DriverRepository) UpdateRating(ctx context.Context, id string, rating float64, totalDeliveries int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":           rating,
		"total_deliveries": totalDeliveries,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrDriverNotFound
	}
	return nil
}

// Seed upserts the given driver profiles. Used in development to populate the
// directory the matching screen displays.
func (r *DriverRepository) Seed(ctx context.Context, drivers []*domain.Driver) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, d := range drivers {
		filter := bson.M{"_id": d.ID}
		update := bson.M{"$setOnInsert": d}
		opts := options.Update().SetUpsert(true)
		if _, err := r.col.UpdateOne(ctx, filter, update, opts); err != nil {
			return err
		}
	}
	return nil
}
