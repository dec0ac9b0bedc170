package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/model"
)

// acquireGuardSQL inserts the claim, or takes over a row whose claim has expired.
// A live claim by another owner leaves the row untouched and affects 0 rows.
const acquireGuardSQL = `INSERT INTO request_guards (user_id, fingerprint, owner, expires_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, fingerprint) DO UPDATE
SET owner = EXCLUDED.owner,
    expires_at = EXCLUDED.expires_at,
    updated_at = EXCLUDED.updated_at
WHERE request_guards.expires_at <= ? OR request_guards.owner = EXCLUDED.owner`

// RequestGuardRepository implements the RequestGuard port on a PostgreSQL table
type RequestGuardRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRequestGuardRepository creates a new RequestGuardRepository instance
func NewRequestGuardRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *RequestGuardRepository {
	return &RequestGuardRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Acquire claims the (user, fingerprint) key for owner until ttl elapses
func (r *RequestGuardRepository) Acquire(ctx context.Context, userID, fingerprint, owner string, ttl time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(ttl)

	result := r.db.WithContext(ctx).Exec(acquireGuardSQL,
		userID, fingerprint, owner, expiresAt, now, now, // INSERT values
		now, // expiry check for the takeover
	)
	if result.Error != nil {
		r.logger.Error("Database error acquiring request guard", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.ToDomain(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.ErrRequestInProgress
	}

	r.logger.Debug("Request guard acquired", map[string]any{
		"user_id":    userID,
		"expires_at": expiresAt,
	})
	return nil
}

// Release drops the claim if owner still holds it. A claim that already expired
// or was taken over is left alone.
func (r *RequestGuardRepository) Release(ctx context.Context, userID, fingerprint, owner string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND fingerprint = ? AND owner = ?", userID, fingerprint, owner).
		Delete(&model.RequestGuard{})

	if result.Error != nil {
		if isContextError(result.Error) {
			r.logger.Warn("Context ended while releasing request guard, it will expire", map[string]any{
				"user_id": userID,
				"error":   result.Error.Error(),
			})
			return nil
		}
		return r.errorClassifier.ToDomain(result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No request guard to release, it may have expired", map[string]any{
			"user_id": userID,
		})
	}
	return nil
}

// PurgeExpired removes all expired claims
func (r *RequestGuardRepository) PurgeExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.timeProvider.Now()).
		Delete(&model.RequestGuard{})

	if result.Error != nil {
		r.logger.Error("Failed to purge expired request guards", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, r.errorClassifier.ToDomain(result.Error)
	}
	return result.RowsAffected, nil
}
