package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	tport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
)

// TransactionKind classifies a ledger entry
type TransactionKind string

// Transaction kinds
const (
	KindPurchase   TransactionKind = "purchase"
	KindReward     TransactionKind = "reward"
	KindGeneration TransactionKind = "generation"
	KindRefund     TransactionKind = "refund"
)

// Transaction is one append-only ledger entry
type Transaction struct {
	ID                 string          // System generated identifier
	UserID             string          // Owning account
	Amount             int64           // Positive for credits, negative for consumption
	Kind               TransactionKind // What caused the entry
	Description        string          // Human readable, never parsed
	RelatedID          string          // Optional generation id or checkout session id
	ExternalPaymentRef string          // Optional payment provider reference
	CreatedAt          time.Time
}

// NewTransaction creates a ledger entry with basic validation.
// The sign of amount must agree with the kind: generation entries are negative, all others positive.
func NewTransaction(
	id string,
	userID string,
	amount int64,
	kind TransactionKind,
	description string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionKind, kind)
	}
	if amount == 0 || (kind == KindGeneration) != (amount < 0) {
		return nil, fmt.Errorf("%w: %d for %s", errs.ErrInvalidAmount, amount, kind)
	}

	return &Transaction{
		ID:          id,
		UserID:      userID,
		Amount:      amount,
		Kind:        kind,
		Description: description,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// WithRelatedID sets the optional related entity reference
func (t *Transaction) WithRelatedID(relatedID string) *Transaction {
	t.RelatedID = relatedID
	return t
}

// WithPaymentRef sets the optional payment provider reference
func (t *Transaction) WithPaymentRef(ref string) *Transaction {
	t.ExternalPaymentRef = ref
	return t
}

// IsCredit returns true if this entry increased the balance
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

// IsDebit returns true if this entry decreased the balance
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}

// IsValid reports whether k is one of the ledger kinds
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindPurchase, KindReward, KindGeneration, KindRefund:
		return true
	default:
		return false
	}
}

// IsCreditKind reports whether k may be used with a credit operation
func (k TransactionKind) IsCreditKind() bool {
	return k == KindPurchase || k == KindRefund
}

// GenerationDescription is the note recorded for a debit
func GenerationDescription(amount int64) string {
	return fmt.Sprintf("HD generation used %d credits", amount)
}

// CreditDescription is the note recorded for a purchase or refund
func CreditDescription(kind TransactionKind, amount int64) string {
	if kind == KindRefund {
		return fmt.Sprintf("refund of %d credits", amount)
	}
	return fmt.Sprintf("purchased %d credits", amount)
}
