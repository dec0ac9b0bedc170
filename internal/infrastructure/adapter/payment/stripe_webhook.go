package payment

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
)

// StripeEventSource implements the VerifiedEventSource port for Stripe webhooks
type StripeEventSource struct {
	secret string
	logger coreport.Logger
}

// NewStripeEventSource creates an event source that checks signatures with the endpoint secret
func NewStripeEventSource(webhookSecret string, logger coreport.Logger) *StripeEventSource {
	return &StripeEventSource{
		secret: webhookSecret,
		logger: logger,
	}
}

// Verify checks the Stripe-Signature header and decodes the event.
// Events other than a completed checkout come back with only ID and Type set.
func (s *StripeEventSource) Verify(payload []byte, signature string) (*entity.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		s.logger.Warn("Webhook signature verification failed", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSignature, err.Error())
	}

	out := &entity.PaymentEvent{
		ID:   event.ID,
		Type: entity.PaymentEventType(event.Type),
	}
	if out.Type != entity.EventCheckoutCompleted {
		return out, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		s.logger.Error("Failed to decode checkout session from webhook", map[string]any{
			"event_id": event.ID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPaymentEvent, err.Error())
	}

	out.SessionID = session.ID
	out.UserID = session.Metadata[entity.MetaUserID]
	out.Credits = session.Metadata[entity.MetaCredits]
	out.Purpose = session.Metadata[entity.MetaType]
	out.PaymentStatus = string(session.PaymentStatus)
	if session.PaymentIntent != nil {
		out.PaymentRef = session.PaymentIntent.ID
	}
	return out, nil
}
