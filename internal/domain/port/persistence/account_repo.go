package persistence

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

// AccountRepository defines the balance operations of the credit ledger
type AccountRepository interface {
	// GetByUserID retrieves an account by its owner
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists for the user
	// - ErrDatabaseConnection: If database connection fails
	GetByUserID(ctx context.Context, userID string) (*entity.Account, error)

	// Create inserts a new account
	// Used by lazy initialization on the first balance query
	//
	// Possible errors:
	// - ErrDuplicateAccount: If an account for the user already exists (lost init race)
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// DebitIfSufficient subtracts amount only when the balance covers it, in one statement.
	// applied=false with a nil error means a concurrent mutation left too little balance.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	DebitIfSufficient(ctx context.Context, userID string, amount int64) (newBalance int64, applied bool, err error)

	// Credit adds amount to the balance and returns the new balance
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists for the user
	// - ErrDatabaseConnection: If database connection fails
	Credit(ctx context.Context, userID string, amount int64) (int64, error)

	// FindDiscrepancies returns every account whose balance differs from the sum of its transactions
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	FindDiscrepancies(ctx context.Context) ([]entity.BalanceDiscrepancy, error)
}
