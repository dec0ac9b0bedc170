package usecase

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

// LedgerUseCase defines the credit ledger operations
type LedgerUseCase interface {
	// GetBalance returns the user's balance, creating the account with the initial grant if needed
	GetBalance(ctx context.Context, userID string) (int64, error)

	// Debit consumes credits. An insufficient balance is reported through the result, not an error.
	Debit(ctx context.Context, userID string, amount int64, relatedID string) (*entity.DebitResult, error)

	// Credit adds credits, idempotently when an external payment reference is given
	Credit(ctx context.Context, req entity.CreditRequest) (*entity.CreditResult, error)

	// ListTransactions returns the most recent transactions, newest first.
	// A non-positive limit selects the default.
	ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)

	// HasDebitFor reports whether a generation debit referencing relatedID is already recorded
	HasDebitFor(ctx context.Context, userID, relatedID string) (bool, error)
}

// MaintenanceUseCase defines the periodic housekeeping jobs
type MaintenanceUseCase interface {
	// ReconcileBalances logs every account whose balance differs from its transaction log
	ReconcileBalances(ctx context.Context) ([]entity.BalanceDiscrepancy, error)

	// PurgeExpiredGuards removes expired request guards
	PurgeExpiredGuards(ctx context.Context) (int64, error)
}
