package purchase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
)

// ListPackages returns the credit price table
func (s *Service) ListPackages() []entity.CreditPackage {
	packages := make([]entity.CreditPackage, len(entity.CreditPackages))
	copy(packages, entity.CreditPackages)
	return packages
}

// CreateCreditCheckout opens a checkout session for a credit package.
// The ledger is not touched; credits arrive through the verified webhook.
func (s *Service) CreateCreditCheckout(ctx context.Context, userID string, credits int64) (*entity.CheckoutSession, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	pkg, err := entity.FindCreditPackage(credits)
	if err != nil {
		return nil, err
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, entity.CheckoutRequest{
		UserID:      userID,
		ProductName: fmt.Sprintf("%d Credits", pkg.Credits),
		Description: "Credits for HD pet avatar generation, 1 to 3 credits per unlock",
		AmountCents: pkg.PriceCents,
		Currency:    entity.Currency,
		SuccessURL:  s.config.AppURL + "/credits/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.config.AppURL + "/credits/cancel",
		Metadata: map[string]string{
			entity.MetaUserID:  userID,
			entity.MetaCredits: strconv.FormatInt(pkg.Credits, 10),
			entity.MetaType:    entity.PurposeCreditPurchase,
		},
	})
	if err != nil {
		s.logger.Error("Failed to create credit checkout session", map[string]any{
			"userId":  userID,
			"credits": credits,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrPaymentGateway, err)
	}

	s.logger.Info("Credit checkout session created", map[string]any{
		"userId":    userID,
		"credits":   pkg.Credits,
		"sessionId": session.ID,
	})
	return session, nil
}

// CreateHDCheckout opens a one-off checkout session that unlocks the HD images of one generation
func (s *Service) CreateHDCheckout(ctx context.Context, userID string, images []string, generationID string) (*entity.CheckoutSession, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	usable := entity.UsableURLs(images)
	if len(usable) == 0 {
		return nil, errs.ErrInvalidGenerationRequest
	}
	if len(usable) > entity.HDUnlockImageCount {
		usable = usable[:entity.HDUnlockImageCount]
	}

	metadata := map[string]string{
		entity.MetaUserID: userID,
		entity.MetaType:   entity.PurposeHDUnlock,
	}
	if generationID != "" {
		metadata[entity.MetaGenerationID] = generationID
	}
	for i, url := range usable {
		metadata[entity.MetaImageKey(i)] = url
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, entity.CheckoutRequest{
		UserID:      userID,
		ProductName: "Pet Avatar HD Images",
		Description: fmt.Sprintf("%d HD images, no watermark", len(usable)),
		AmountCents: entity.HDUnlockPriceCents,
		Currency:    entity.Currency,
		SuccessURL:  s.config.AppURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.config.AppURL + "/generate",
		Metadata:    metadata,
	})
	if err != nil {
		s.logger.Error("Failed to create HD checkout session", map[string]any{
			"userId":       userID,
			"generationId": generationID,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrPaymentGateway, err)
	}

	s.logger.Info("HD checkout session created", map[string]any{
		"userId":       userID,
		"generationId": generationID,
		"sessionId":    session.ID,
	})
	return session, nil
}
