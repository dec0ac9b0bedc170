package persistence

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

// TransactionRepository defines the append-only transaction log
type TransactionRepository interface {
	// Create appends a transaction
	//
	// Possible errors:
	// - ErrDuplicatePayment: If (user_id, external_payment_ref) is already recorded
	// - ErrConstraintViolation: If another constraint rejects the row
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns the user's most recent transactions, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)

	// ExistsByPaymentRef checks whether a payment reference was already applied to the user
	// Used for idempotent credit
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ExistsByPaymentRef(ctx context.Context, userID, paymentRef string) (bool, error)

	// ExistsByRelatedID checks whether an entry of the given kind already references relatedID
	// Used to make debit retries safe
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ExistsByRelatedID(ctx context.Context, userID string, kind entity.TransactionKind, relatedID string) (bool, error)
}
