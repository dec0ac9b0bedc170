package purchase

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// VerifyPayment confirms a one-off HD checkout and returns the images it paid for.
// The generation record is marked paid on a best effort basis.
func (s *Service) VerifyPayment(ctx context.Context, userID, sessionID string) (*usecase.VerifiedPayment, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, errs.ErrInvalidRequest
	}

	session, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to retrieve checkout session", map[string]any{
			"sessionId": sessionID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrPaymentGateway, err)
	}
	if !session.IsPaid() {
		return nil, errs.ErrPaymentNotCompleted
	}
	if owner := session.Metadata[entity.MetaUserID]; owner != "" && owner != userID {
		return nil, errs.ErrGenerationNotOwned
	}

	images := make([]string, 0, entity.HDUnlockImageCount)
	for i := 0; i < entity.HDUnlockImageCount; i++ {
		if url := session.Metadata[entity.MetaImageKey(i)]; url != "" {
			images = append(images, url)
		}
	}

	verified := &usecase.VerifiedPayment{
		Paid:         true,
		Images:       images,
		GenerationID: session.Metadata[entity.MetaGenerationID],
		AmountCents:  session.AmountTotal,
	}

	if verified.GenerationID != "" {
		s.markPaid(ctx, verified, session.PaymentRef)
	}

	s.logger.Info("Payment verified", map[string]any{
		"userId":       userID,
		"sessionId":    sessionID,
		"generationId": verified.GenerationID,
		"amount":       entity.FormatCents(session.AmountTotal),
	})
	return verified, nil
}

func (s *Service) markPaid(ctx context.Context, verified *usecase.VerifiedPayment, paymentRef string) {
	paid := true
	amount := verified.AmountCents
	_, err := s.generations.Update(ctx, verified.GenerationID, entity.GenerationUpdate{
		HDURLs:      verified.Images,
		Paid:        &paid,
		PaymentID:   &paymentRef,
		AmountCents: &amount,
	})
	if err != nil {
		s.logger.Error("Failed to mark generation paid", map[string]any{
			"generationId": verified.GenerationID,
			"paymentRef":   paymentRef,
			"error":        err.Error(),
			"reconcile":    true,
		})
	}
}
