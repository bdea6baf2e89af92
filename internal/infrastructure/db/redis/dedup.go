package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Each legal transition applies a status to a delivery exactly once, so the
// pair (delivery, status) fully identifies an update. 24h comfortably covers
// the lifetime of a delivery.
const dedupTTL = 24 * time.Hour

// DedupChecker provides status-update idempotency checks backed by Redis.
// Key format: dedup:<delivery_id>:<status>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this status has already been applied to the delivery.
func (d *DedupChecker) IsDuplicate(ctx context.Context, deliveryID, status string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(deliveryID, status)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this status update has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, deliveryID, status string) error {
	return d.client.Set(ctx, d.key(deliveryID, status), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(deliveryID, status string) string {
	return fmt.Sprintf("dedup:%s:%s", deliveryID, status)
}
