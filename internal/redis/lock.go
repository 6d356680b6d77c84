package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const tripLockPrefix = "lock:trip:"

// LockStore provides short-lived distributed locks around trip assignment.
// The lock only serializes contending pilots; the conditional database
// update remains the source of truth for who won.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireTripLock attempts to lock a trip for assignment. Returns false if
// another assignment attempt holds the lock.
func (s *LockStore) AcquireTripLock(ctx context.Context, tripID string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, tripLockPrefix+tripID, "1", ttl).Result()
}

// ReleaseTripLock releases the lock for a trip.
func (s *LockStore) ReleaseTripLock(ctx context.Context, tripID string) error {
	return s.client.Del(ctx, tripLockPrefix+tripID).Err()
}
