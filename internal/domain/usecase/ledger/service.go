package ledger

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// Config holds the ledger tunables
type Config struct {
	InitialCredits      int64
	DefaultHistoryLimit int
	MaxHistoryLimit     int
}

// DefaultConfig returns the configuration observed in production
func DefaultConfig() Config {
	return Config{
		InitialCredits:      entity.InitialCredits,
		DefaultHistoryLimit: 50,
		MaxHistoryLimit:     200,
	}
}

// Service implements the credit ledger on top of a unit of work.
// Every mutation changes the balance and appends its transaction in one database transaction.
type Service struct {
	uow          persistence.UnitOfWork
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *Validator
	idempotency  *IdempotencyChecker
	config       Config

	// coalesces concurrent first-time balance queries for the same user
	initGroup singleflight.Group
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	if config.DefaultHistoryLimit <= 0 {
		config.DefaultHistoryLimit = DefaultConfig().DefaultHistoryLimit
	}
	if config.MaxHistoryLimit < config.DefaultHistoryLimit {
		config.MaxHistoryLimit = config.DefaultHistoryLimit
	}

	return &Service{
		uow:          uow,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewValidator(),
		idempotency:  NewIdempotencyChecker(uow),
		config:       config,
	}
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// currentBalance reads the balance outside of any transaction
func (s *Service) currentBalance(ctx context.Context, userID string) (int64, error) {
	account, err := s.uow.GetAccountRepository(ctx).GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return account.Balance(), nil
}

// rollback rolls back txCtx and logs a failure, keeping the original error as the one returned
func (s *Service) rollback(txCtx context.Context, userID, operation string) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to roll back ledger transaction", map[string]any{
			"userId":    userID,
			"operation": operation,
			"error":     err.Error(),
		})
	}
}

// logLedgerError logs err with its structured fields when it carries them
func (s *Service) logLedgerError(message string, err error) {
	var ledgerErr *errs.LedgerError
	if errors.As(err, &ledgerErr) {
		s.logger.Error(message, ledgerErr.LogFields())
		return
	}
	s.logger.Error(message, map[string]any{"error": err.Error()})
}
