package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// PaymentRefIndex is the unique partial index that makes purchase credits idempotent
const PaymentRefIndex = "ux_transactions_user_payment_ref"

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgNotNullViolation     = "23502"
	pgNumericOutOfRange    = "22003"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgTooManyConnections   = "53300"
	pgAdminShutdown        = "57P01"
	pgConnectionClass      = "08"
)

// ErrorClassifier provides methods to classify database errors.
// PgError codes are authoritative; message matching covers drivers and test doubles that don't surface them.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

func pgCode(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if c.IsDuplicateKeyError(err) {
		return DuplicateKeyError
	}
	if c.IsLockError(err) {
		return LockError
	}
	if c.IsTransientError(err) {
		return TransientError
	}
	if c.IsConnectionError(err) {
		return ConnectionError
	}
	if c.IsConstraintError(err) {
		return ConstraintError
	}

	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := pgCode(err); ok {
		return pgErr.Code == pgUniqueViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// IsPaymentRefConflict reports a unique violation on the payment reference index
func (c *ErrorClassifier) IsPaymentRefConflict(err error) bool {
	if !c.IsDuplicateKeyError(err) {
		return false
	}
	if pgErr, ok := pgCode(err); ok {
		return pgErr.ConstraintName == PaymentRefIndex
	}
	return strings.Contains(err.Error(), PaymentRefIndex)
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := pgCode(err); ok {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable, pgTooManyConnections, pgAdminShutdown:
			return true
		}
		return strings.HasPrefix(pgErr.Code, pgConnectionClass)
	}
	msg := err.Error()
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "unexpected EOF") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "broken pipe") ||
		c.IsLockError(err)
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := pgCode(err); ok {
		return pgErr.Code == pgDeadlockDetected ||
			pgErr.Code == pgLockNotAvailable ||
			pgErr.Code == pgSerializationFailure
	}
	return strings.Contains(err.Error(), "deadlock") ||
		strings.Contains(err.Error(), "lock wait timeout") ||
		strings.Contains(err.Error(), "could not serialize access")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := pgCode(err); ok {
		return strings.HasPrefix(pgErr.Code, pgConnectionClass) || pgErr.Code == pgAdminShutdown
	}
	return strings.Contains(err.Error(), "connection") ||
		strings.Contains(err.Error(), "dial") ||
		strings.Contains(err.Error(), "network") ||
		c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := pgCode(err); ok {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation:
			return true
		}
		return false
	}
	return strings.Contains(err.Error(), "constraint") ||
		strings.Contains(err.Error(), "violates") ||
		c.IsDuplicateKeyError(err)
}

// IsOutOfRange reports an integer overflow raised by the database
func (c *ErrorClassifier) IsOutOfRange(err error) bool {
	if pgErr, ok := pgCode(err); ok {
		return pgErr.Code == pgNumericOutOfRange
	}
	return err != nil && strings.Contains(err.Error(), "out of range")
}

// ToDomain maps a store error to the domain error callers branch on. The original
// error stays in the chain so retry logic can still classify it.
func (c *ErrorClassifier) ToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case isContextError(err):
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	case c.IsPaymentRefConflict(err):
		return errs.ErrDuplicatePayment
	case c.IsOutOfRange(err):
		return fmt.Errorf("%w: %w", errs.ErrAmountOverflow, err)
	case c.IsConstraintError(err):
		return fmt.Errorf("%w: %w", errs.ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled")
}
