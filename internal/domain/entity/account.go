package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
)

// InitialCredits is the grant every new account starts with
const InitialCredits int64 = 3

// NewAccountGrantDescription describes the reward transaction recorded on lazy account creation
const NewAccountGrantDescription = "new-account grant"

// Account is a user's prepaid credit balance
type Account struct {
	UserID    string    // Opaque identifier from the identity provider
	balance   int64     // Never negative (private)
	CreatedAt time.Time // When the account was lazily created
	UpdatedAt time.Time // When the balance last changed
}

// NewAccount creates an account seeded with the given initial grant
func NewAccount(userID string, initialCredits int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if initialCredits < 0 {
		return nil, errs.ErrNegativeBalance
	}

	now := timeProvider.Now()
	return &Account{
		UserID:    userID,
		balance:   initialCredits,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreAccount rebuilds an account from persisted state (for repositories)
func RestoreAccount(userID string, balance int64, createdAt, updatedAt time.Time) *Account {
	return &Account{
		UserID:    userID,
		balance:   balance,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Balance returns the current number of credits
func (a *Account) Balance() int64 {
	return a.balance
}

// CanDebit checks if the account can cover the amount
func (a *Account) CanDebit(amount int64) bool {
	return amount > 0 && a.balance >= amount
}

// ApplyCredit adds the amount to the balance
func (a *Account) ApplyCredit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	next, err := AddCredits(a.balance, amount)
	if err != nil {
		return err
	}
	a.balance = next
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyDebit subtracts the amount from the balance.
// Returns ErrInsufficientCredits if the balance would go negative.
func (a *Account) ApplyDebit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if a.balance < amount {
		return errs.NewInsufficientCreditsError(a.UserID, amount, a.balance)
	}
	a.balance -= amount
	a.UpdatedAt = timeProvider.Now()
	return nil
}
