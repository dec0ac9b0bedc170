package usecase

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

// PaymentOutcome reports what a verified payment event did to the ledger
type PaymentOutcome struct {
	Handled   bool // false when the event is not a credit purchase
	Duplicate bool
	UserID    string
	Credits   int64
	Balance   int64
}

// VerifiedPayment is the result of checking a one-off HD unlock checkout
type VerifiedPayment struct {
	Paid         bool
	Images       []string
	GenerationID string
	AmountCents  int64
}

// PurchaseUseCase defines checkout and payment notification handling
type PurchaseUseCase interface {
	// ListPackages returns the credit price table
	ListPackages() []entity.CreditPackage

	// CreateCreditCheckout opens a checkout session for a package. It never touches the ledger.
	CreateCreditCheckout(ctx context.Context, userID string, credits int64) (*entity.CheckoutSession, error)

	// CreateHDCheckout opens a one-off checkout to unlock one generation's HD images
	CreateHDCheckout(ctx context.Context, userID string, images []string, generationID string) (*entity.CheckoutSession, error)

	// HandlePaymentEvent applies a verified payment event to the ledger
	HandlePaymentEvent(ctx context.Context, event *entity.PaymentEvent) (*PaymentOutcome, error)

	// VerifyPayment confirms that a one-off checkout was paid and returns the unlocked images
	VerifyPayment(ctx context.Context, userID, sessionID string) (*VerifiedPayment, error)
}
