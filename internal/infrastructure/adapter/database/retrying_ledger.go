package database

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// LedgerRetryConfig returns the retry settings applied to ledger calls
func LedgerRetryConfig() RetryConfig {
	config := DefaultRetryConfig()
	config.MaxRetries = 3
	return config
}

// RetryingLedger replays ledger calls that are safe to repeat when the store fails transiently.
// Reads and credits carrying a payment reference are retried. Debits, and credits without a
// reference, run once: a replay after a lost commit acknowledgement could apply them twice.
type RetryingLedger struct {
	usecase.LedgerUseCase
	config RetryConfig
	logger coreport.Logger
}

// NewRetryingLedger wraps ledger with transient error retries
func NewRetryingLedger(ledger usecase.LedgerUseCase, config RetryConfig, logger coreport.Logger) *RetryingLedger {
	return &RetryingLedger{
		LedgerUseCase: ledger,
		config:        config,
		logger:        logger.Named("ledger-retry"),
	}
}

var _ usecase.LedgerUseCase = (*RetryingLedger)(nil)

// GetBalance retries the balance read, including the lazy account creation it may perform
func (l *RetryingLedger) GetBalance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := RetryOnTransientError(ctx, l.config, func() error {
		var err error
		balance, err = l.LedgerUseCase.GetBalance(ctx, userID)
		return err
	}, l.logger)
	return balance, err
}

// ListTransactions retries the history read
func (l *RetryingLedger) ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	var transactions []*entity.Transaction
	err := RetryOnTransientError(ctx, l.config, func() error {
		var err error
		transactions, err = l.LedgerUseCase.ListTransactions(ctx, userID, limit)
		return err
	}, l.logger)
	return transactions, err
}

// HasDebitFor retries the related debit lookup
func (l *RetryingLedger) HasDebitFor(ctx context.Context, userID, relatedID string) (bool, error) {
	var found bool
	err := RetryOnTransientError(ctx, l.config, func() error {
		var err error
		found, err = l.LedgerUseCase.HasDebitFor(ctx, userID, relatedID)
		return err
	}, l.logger)
	return found, err
}

// Credit replays the whole unit of work when the request carries a payment reference.
// A replay that finds the reference already applied comes back as a duplicate.
func (l *RetryingLedger) Credit(ctx context.Context, req entity.CreditRequest) (*entity.CreditResult, error) {
	if req.ExternalPaymentRef == "" {
		return l.LedgerUseCase.Credit(ctx, req)
	}

	var result *entity.CreditResult
	err := RetryOnTransientError(ctx, l.config, func() error {
		var err error
		result, err = l.LedgerUseCase.Credit(ctx, req)
		return err
	}, l.logger)
	if err != nil {
		return nil, err
	}
	return result, nil
}
