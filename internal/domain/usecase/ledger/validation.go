package ledger

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
)

// Validator rejects invalid ledger input before any store access
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUserID checks that a user id was supplied
func (v *Validator) ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.ErrInvalidUserID
	}
	return nil
}

// ValidateDebit validates the inputs of a debit
func (v *Validator) ValidateDebit(userID string, amount int64) error {
	if err := v.ValidateUserID(userID); err != nil {
		return err
	}
	return v.validateAmount(amount)
}

// ValidateCredit validates the inputs of a credit
func (v *Validator) ValidateCredit(req entity.CreditRequest) error {
	if err := v.ValidateUserID(req.UserID); err != nil {
		return err
	}
	if err := v.validateAmount(req.Amount); err != nil {
		return err
	}

	kind := req.EffectiveKind()
	if !kind.IsCreditKind() {
		return fmt.Errorf("%w: %s cannot be credited", errs.ErrInvalidTransactionKind, kind)
	}
	return nil
}

func (v *Validator) validateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidAmount, amount)
	}
	return nil
}
