package persistence

import (
	"context"
	"time"
)

// RequestGuard claims (user, request fingerprint) pairs so that an identical request
// submitted twice is only served once at a time. Claims expire after ttl.
type RequestGuard interface {
	// Acquire claims the key for owner
	//
	// Possible errors:
	// - ErrRequestInProgress: If an unexpired claim by another owner exists
	// - ErrDatabaseConnection: If the backing store is unreachable
	Acquire(ctx context.Context, userID, fingerprint, owner string, ttl time.Duration) error

	// Release drops the claim if owner still holds it
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the backing store is unreachable
	Release(ctx context.Context, userID, fingerprint, owner string) error

	// PurgeExpired removes expired claims and returns how many were removed.
	// Stores with native expiry return 0.
	PurgeExpired(ctx context.Context) (int64, error)
}
