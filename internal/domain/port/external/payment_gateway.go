package external

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

// CheckoutGateway opens and inspects hosted checkout sessions
type CheckoutGateway interface {
	// CreateCheckoutSession opens a session and returns its id and redirect URL
	//
	// Possible errors:
	// - ErrPaymentGateway: If the provider call fails
	CreateCheckoutSession(ctx context.Context, req entity.CheckoutRequest) (*entity.CheckoutSession, error)

	// GetCheckoutSession retrieves a session by id
	//
	// Possible errors:
	// - ErrPaymentGateway: If the provider call fails or the session is unknown
	GetCheckoutSession(ctx context.Context, sessionID string) (*entity.CheckoutSession, error)
}

// VerifiedEventSource authenticates raw provider callbacks. Callers only ever see
// events whose signature was checked.
type VerifiedEventSource interface {
	// Verify checks the signature and decodes the event
	//
	// Possible errors:
	// - ErrInvalidSignature: If the payload or signature is rejected
	// - ErrInvalidPaymentEvent: If the event body cannot be decoded
	Verify(payload []byte, signature string) (*entity.PaymentEvent, error)
}
