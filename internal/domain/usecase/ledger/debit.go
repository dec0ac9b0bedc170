package ledger

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
)

// Debit consumes amount credits for relatedID.
// A balance that cannot cover the amount yields Success=false and leaves the ledger untouched.
// A relatedID that already carries a generation debit is a replay: it succeeds with the
// current balance and charges nothing.
func (s *Service) Debit(ctx context.Context, userID string, amount int64, relatedID string) (*entity.DebitResult, error) {
	if err := s.validator.ValidateDebit(userID, amount); err != nil {
		return nil, err
	}

	account, err := s.ensureAccount(ctx, userID)
	if err != nil {
		ledgerErr := errs.NewLedgerError(userID, "debit", amount, err)
		s.logLedgerError("Failed to resolve account for debit", ledgerErr)
		return nil, ledgerErr
	}

	recorded, err := s.idempotency.DebitRecorded(ctx, userID, relatedID)
	if err != nil {
		ledgerErr := errs.NewLedgerError(userID, "debit", amount, err)
		s.logLedgerError("Failed to check related debit", ledgerErr)
		return nil, ledgerErr
	}
	if recorded {
		s.logger.Info("Debit already recorded, not charging again", map[string]any{
			"userId":    userID,
			"amount":    amount,
			"relatedId": relatedID,
			"balance":   account.Balance(),
		})
		return &entity.DebitResult{Success: true, RemainingBalance: account.Balance()}, nil
	}

	if !account.CanDebit(amount) {
		s.logger.Info("Debit refused, insufficient credits", map[string]any{
			"userId":    userID,
			"amount":    amount,
			"balance":   account.Balance(),
			"relatedId": relatedID,
		})
		return &entity.DebitResult{Success: false, RemainingBalance: account.Balance()}, nil
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, errs.NewLedgerError(userID, "debit", amount, err)
	}

	newBalance, applied, err := s.uow.GetAccountRepository(txCtx).DebitIfSufficient(txCtx, userID, amount)
	if err != nil {
		s.rollback(txCtx, userID, "debit")
		ledgerErr := errs.NewLedgerError(userID, "debit", amount, err)
		s.logLedgerError("Failed to debit account", ledgerErr)
		return nil, ledgerErr
	}

	if !applied {
		// A concurrent debit drained the balance between the read and the conditional update
		s.rollback(txCtx, userID, "debit")
		current, err := s.currentBalance(ctx, userID)
		if err != nil {
			return nil, errs.NewLedgerError(userID, "debit", amount, err)
		}
		s.logger.Info("Debit refused after concurrent update", map[string]any{
			"userId":    userID,
			"amount":    amount,
			"balance":   current,
			"relatedId": relatedID,
		})
		return &entity.DebitResult{Success: false, RemainingBalance: current}, nil
	}

	entry, err := entity.NewTransaction(
		s.idGenerator.NewID(),
		userID,
		-amount,
		entity.KindGeneration,
		entity.GenerationDescription(amount),
		s.timeProvider,
	)
	if err != nil {
		s.rollback(txCtx, userID, "debit")
		return nil, err
	}
	entry.WithRelatedID(relatedID)

	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, entry); err != nil {
		s.rollback(txCtx, userID, "debit")
		ledgerErr := errs.NewLedgerError(userID, "debit", amount, err)
		s.logLedgerError("Failed to record debit transaction", ledgerErr)
		return nil, ledgerErr
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx, userID, "debit")
		return nil, errs.NewLedgerError(userID, "debit", amount, err)
	}

	s.logger.Info("Credits debited", map[string]any{
		"userId":        userID,
		"amount":        amount,
		"relatedId":     relatedID,
		"transactionId": entry.ID,
		"newBalance":    newBalance,
	})

	return &entity.DebitResult{Success: true, RemainingBalance: newBalance}, nil
}

// HasDebitFor reports whether a generation debit referencing relatedID is already recorded.
// Callers use it before retrying a debit with the same related id.
func (s *Service) HasDebitFor(ctx context.Context, userID, relatedID string) (bool, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return false, err
	}
	return s.idempotency.DebitRecorded(ctx, userID, relatedID)
}
