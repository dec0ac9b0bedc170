package generation

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// UnlockHD pays for the HD images of a generation with credits.
//
// The debit happens only once there is usable output to hand back. A generation that is already
// paid, or already has a debit recorded against it, is returned without charging again.
func (s *Service) UnlockHD(ctx context.Context, req usecase.HDRequest) (*usecase.HDResult, error) {
	if err := validateUserID(req.UserID); err != nil {
		return nil, err
	}

	record, err := s.loadOwnedRecord(ctx, req.UserID, req.GenerationID)
	if err != nil {
		return nil, err
	}

	images := entity.UsableURLs(req.Images)
	style := req.Style
	if record != nil {
		if len(images) == 0 {
			images = entity.UsableURLs(record.PreviewURLs)
		}
		// A stored generation is priced by the style it was generated with
		if record.Style != "" {
			style = string(record.Style)
		}
	}
	cost := entity.CreditsForStyle(style)

	fingerprint := entity.RequestFingerprint(req.GenerationID)
	if req.GenerationID == "" {
		fingerprint = entity.RequestFingerprint(images...)
	}
	release, err := s.claim(ctx, req.UserID, fingerprint)
	if err != nil {
		return nil, err
	}
	defer release()

	unlocked, err := s.alreadyUnlocked(ctx, req.UserID, req.GenerationID, record)
	if err != nil {
		return nil, err
	}
	if unlocked {
		return s.unlockedResult(ctx, req, record, images)
	}

	if len(images) == 0 {
		return nil, errs.ErrInvalidGenerationRequest
	}

	debit, err := s.ledger.Debit(ctx, req.UserID, cost, req.GenerationID)
	if err != nil {
		return nil, err
	}
	if !debit.Success {
		return nil, errs.NewInsufficientCreditsError(req.UserID, cost, debit.RemainingBalance)
	}

	result := &usecase.HDResult{
		Images:           images,
		CreditsUsed:      cost,
		RemainingBalance: debit.RemainingBalance,
	}
	if req.GenerationID != "" {
		result.RecordUpdated = s.markUnlocked(ctx, req, cost, images)
	}

	s.logger.Info("HD images unlocked", map[string]any{
		"userId":           req.UserID,
		"generationId":     req.GenerationID,
		"style":            style,
		"creditsUsed":      cost,
		"remainingCredits": debit.RemainingBalance,
	})

	return result, nil
}

func (s *Service) unlockedResult(ctx context.Context, req usecase.HDRequest, record *entity.Generation, images []string) (*usecase.HDResult, error) {
	balance, err := s.ledger.GetBalance(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if record != nil && len(record.HDURLs) > 0 {
		images = record.HDURLs
	}

	s.logger.Info("Generation already unlocked, not charging", map[string]any{
		"userId":       req.UserID,
		"generationId": req.GenerationID,
	})
	return &usecase.HDResult{Images: images, RemainingBalance: balance, RecordUpdated: true}, nil
}

// loadOwnedRecord fetches the generation record when an id is given.
// A missing record is tolerated: the request's own images are used instead.
func (s *Service) loadOwnedRecord(ctx context.Context, userID, generationID string) (*entity.Generation, error) {
	if generationID == "" {
		return nil, nil
	}

	record, err := s.generations.GetByID(ctx, generationID)
	if errors.Is(err, errs.ErrGenerationNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Warn("Failed to load generation record", map[string]any{
			"generationId": generationID,
			"error":        err.Error(),
		})
		return nil, nil
	}
	if !record.OwnedBy(userID) {
		return nil, errs.ErrGenerationNotOwned
	}
	return record, nil
}

func (s *Service) alreadyUnlocked(ctx context.Context, userID, generationID string, record *entity.Generation) (bool, error) {
	if record != nil && record.Paid {
		return true, nil
	}
	if generationID == "" {
		return false, nil
	}
	return s.ledger.HasDebitFor(ctx, userID, generationID)
}

// markUnlocked records the HD urls on the generation. The credits are already spent, so a
// failure here is only logged with enough context to reconcile the record later.
func (s *Service) markUnlocked(ctx context.Context, req usecase.HDRequest, cost int64, images []string) bool {
	paid := true
	paymentID := entity.CreditsPaymentID(s.timeProvider.Now())
	var amount int64
	_, err := s.generations.Update(ctx, req.GenerationID, entity.GenerationUpdate{
		HDURLs:      images,
		Paid:        &paid,
		PaymentID:   &paymentID,
		AmountCents: &amount,
	})
	if err != nil {
		s.logger.Error("Failed to update generation record after debit", map[string]any{
			"userId":       req.UserID,
			"generationId": req.GenerationID,
			"creditsUsed":  cost,
			"error":        err.Error(),
			"reconcile":    true,
		})
		return false
	}
	return true
}
