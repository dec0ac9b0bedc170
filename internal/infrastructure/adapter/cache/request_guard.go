package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
)

const guardKeyPrefix = "guard"

// releaseScript deletes the key only while it still holds the caller's owner token
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// refreshScript extends the claim when the same owner acquires it again
const refreshScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
else
	return 0
end
`

// RequestGuard implements the RequestGuard port with SET NX PX keys.
// Expiry is native, so PurgeExpired has nothing to do.
type RequestGuard struct {
	client redis.UniversalClient
	logger coreport.Logger
}

// NewRequestGuard creates a Redis backed request guard
func NewRequestGuard(client redis.UniversalClient, logger coreport.Logger) *RequestGuard {
	return &RequestGuard{
		client: client,
		logger: logger,
	}
}

// guardKey builds guard:{user}:{fingerprint}
func guardKey(userID, fingerprint string) string {
	return fmt.Sprintf("%s:%s:%s", guardKeyPrefix, userID, fingerprint)
}

// Acquire claims the key for owner until ttl elapses
func (g *RequestGuard) Acquire(ctx context.Context, userID, fingerprint, owner string, ttl time.Duration) error {
	key := guardKey(userID, fingerprint)

	ok, err := g.client.SetNX(ctx, key, owner, ttl).Result()
	if err != nil {
		g.logger.Error("Redis error acquiring request guard", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: redis: %s", errs.ErrDatabaseConnection, err.Error())
	}
	if ok {
		return nil
	}

	refreshed, err := g.client.Eval(ctx, refreshScript, []string{key}, owner, ttl.Milliseconds()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: redis: %s", errs.ErrDatabaseConnection, err.Error())
	}
	if refreshed == 1 {
		return nil
	}

	g.logger.Debug("Request guard held by another request", map[string]any{
		"user_id": userID,
	})
	return errs.ErrRequestInProgress
}

// Release drops the claim if owner still holds it
func (g *RequestGuard) Release(ctx context.Context, userID, fingerprint, owner string) error {
	_, err := g.client.Eval(ctx, releaseScript, []string{guardKey(userID, fingerprint)}, owner).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			g.logger.Warn("Context ended while releasing request guard, it will expire", map[string]any{
				"user_id": userID,
			})
			return nil
		}
		return fmt.Errorf("%w: redis: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// PurgeExpired is a no-op, Redis expires keys itself
func (g *RequestGuard) PurgeExpired(context.Context) (int64, error) {
	return 0, nil
}
