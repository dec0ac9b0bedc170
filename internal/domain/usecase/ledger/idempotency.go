package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/persistence"
)

// IdempotencyChecker looks up earlier ledger entries that make a request a replay
type IdempotencyChecker struct {
	uow persistence.UnitOfWork
}

// NewIdempotencyChecker creates a new IdempotencyChecker
func NewIdempotencyChecker(uow persistence.UnitOfWork) *IdempotencyChecker {
	return &IdempotencyChecker{uow: uow}
}

// PaymentApplied reports whether paymentRef was already credited to the user.
// An empty reference is never a replay.
func (c *IdempotencyChecker) PaymentApplied(ctx context.Context, userID, paymentRef string) (bool, error) {
	if paymentRef == "" {
		return false, nil
	}

	exists, err := c.uow.GetTransactionRepository(ctx).ExistsByPaymentRef(ctx, userID, paymentRef)
	if err != nil {
		return false, fmt.Errorf("failed to check payment reference: %w", err)
	}
	return exists, nil
}

// DebitRecorded reports whether a generation debit for relatedID exists
func (c *IdempotencyChecker) DebitRecorded(ctx context.Context, userID, relatedID string) (bool, error) {
	if relatedID == "" {
		return false, nil
	}

	exists, err := c.uow.GetTransactionRepository(ctx).ExistsByRelatedID(ctx, userID, entity.KindGeneration, relatedID)
	if err != nil {
		return false, fmt.Errorf("failed to check related debit: %w", err)
	}
	return exists, nil
}
