package purchase

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// HandlePaymentEvent applies a verified payment event.
// Only completed and paid credit purchases touch the ledger; every other event is acknowledged and ignored.
// A replayed event is reported as a handled duplicate.
func (s *Service) HandlePaymentEvent(ctx context.Context, event *entity.PaymentEvent) (*usecase.PaymentOutcome, error) {
	if event == nil || !event.IsCreditPurchase() {
		return &usecase.PaymentOutcome{Handled: false}, nil
	}
	if !event.IsPaid() {
		// Delayed payment methods complete the session before the money settles
		s.logger.Info("Checkout completed without settled payment, not crediting", map[string]any{
			"eventId":       event.ID,
			"sessionId":     event.SessionID,
			"paymentStatus": event.PaymentStatus,
		})
		return &usecase.PaymentOutcome{Handled: false}, nil
	}

	userID := strings.TrimSpace(event.UserID)
	if userID == "" {
		s.logger.Warn("Payment event without user id", map[string]any{
			"eventId":   event.ID,
			"sessionId": event.SessionID,
		})
		return nil, fmt.Errorf("%w: missing userId", errs.ErrInvalidPaymentEvent)
	}
	credits, err := entity.ParseCredits(event.Credits)
	if err != nil {
		s.logger.Warn("Payment event with invalid credits", map[string]any{
			"eventId":   event.ID,
			"sessionId": event.SessionID,
			"credits":   event.Credits,
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPaymentEvent, err)
	}

	ref := event.PaymentRef
	if ref == "" {
		// Sessions paid without an intent still need a stable idempotency key
		ref = event.SessionID
	}

	result, err := s.ledger.Credit(ctx, entity.CreditRequest{
		UserID:             userID,
		Amount:             credits,
		Kind:               entity.KindPurchase,
		ExternalPaymentRef: ref,
		RelatedID:          event.SessionID,
	})
	if err != nil {
		s.logger.Error("Failed to apply credit purchase", map[string]any{
			"eventId":    event.ID,
			"userId":     userID,
			"credits":    credits,
			"paymentRef": ref,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Credit purchase applied", map[string]any{
		"eventId":    event.ID,
		"userId":     userID,
		"credits":    credits,
		"paymentRef": ref,
		"duplicate":  result.Duplicate,
		"newBalance": result.NewBalance,
	})

	return &usecase.PaymentOutcome{
		Handled:   true,
		Duplicate: result.Duplicate,
		UserID:    userID,
		Credits:   credits,
		Balance:   result.NewBalance,
	}, nil
}
