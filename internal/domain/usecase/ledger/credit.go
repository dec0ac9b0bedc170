package ledger

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
)

// Credit adds credits to the user's balance.
// With an external payment reference the call is idempotent: a replay returns the current
// balance with Duplicate=true and records nothing.
func (s *Service) Credit(ctx context.Context, req entity.CreditRequest) (*entity.CreditResult, error) {
	if err := s.validator.ValidateCredit(req); err != nil {
		return nil, err
	}
	kind := req.EffectiveKind()

	if _, err := s.ensureAccount(ctx, req.UserID); err != nil {
		ledgerErr := errs.NewLedgerError(req.UserID, "credit", req.Amount, err)
		s.logLedgerError("Failed to resolve account for credit", ledgerErr)
		return nil, ledgerErr
	}

	applied, err := s.idempotency.PaymentApplied(ctx, req.UserID, req.ExternalPaymentRef)
	if err != nil {
		ledgerErr := errs.NewLedgerError(req.UserID, "credit", req.Amount, err)
		s.logLedgerError("Failed to check payment reference", ledgerErr)
		return nil, ledgerErr
	}
	if applied {
		return s.duplicateCredit(ctx, req)
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, errs.NewLedgerError(req.UserID, "credit", req.Amount, err)
	}

	newBalance, err := s.uow.GetAccountRepository(txCtx).Credit(txCtx, req.UserID, req.Amount)
	if err != nil {
		s.rollback(txCtx, req.UserID, "credit")
		ledgerErr := errs.NewLedgerError(req.UserID, "credit", req.Amount, err)
		s.logLedgerError("Failed to credit account", ledgerErr)
		return nil, ledgerErr
	}

	entry, err := entity.NewTransaction(
		s.idGenerator.NewID(),
		req.UserID,
		req.Amount,
		kind,
		entity.CreditDescription(kind, req.Amount),
		s.timeProvider,
	)
	if err != nil {
		s.rollback(txCtx, req.UserID, "credit")
		return nil, err
	}
	entry.WithPaymentRef(req.ExternalPaymentRef).WithRelatedID(req.RelatedID)

	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, entry); err != nil {
		s.rollback(txCtx, req.UserID, "credit")
		if errors.Is(err, errs.ErrDuplicatePayment) {
			// Lost a race against a concurrent delivery of the same payment
			return s.duplicateCredit(ctx, req)
		}
		ledgerErr := errs.NewLedgerError(req.UserID, "credit", req.Amount, err)
		s.logLedgerError("Failed to record credit transaction", ledgerErr)
		return nil, ledgerErr
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx, req.UserID, "credit")
		return nil, errs.NewLedgerError(req.UserID, "credit", req.Amount, err)
	}

	s.logger.Info("Credits added", map[string]any{
		"userId":        req.UserID,
		"amount":        req.Amount,
		"kind":          string(kind),
		"paymentRef":    req.ExternalPaymentRef,
		"relatedId":     req.RelatedID,
		"transactionId": entry.ID,
		"newBalance":    newBalance,
	})

	return &entity.CreditResult{Success: true, NewBalance: newBalance}, nil
}

func (s *Service) duplicateCredit(ctx context.Context, req entity.CreditRequest) (*entity.CreditResult, error) {
	balance, err := s.currentBalance(ctx, req.UserID)
	if err != nil {
		return nil, errs.NewLedgerError(req.UserID, "credit", req.Amount, err)
	}

	dup := &errs.DuplicatePaymentError{UserID: req.UserID, PaymentRef: req.ExternalPaymentRef}
	s.logger.Info("Payment already applied, skipping credit", dup.LogFields())

	return &entity.CreditResult{Success: true, NewBalance: balance, Duplicate: true}, nil
}
