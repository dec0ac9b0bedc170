package generation

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// CreateRecord stores a generation record supplied by the client
func (s *Service) CreateRecord(ctx context.Context, req usecase.CreateGenerationRequest) (*entity.Generation, error) {
	if err := validateUserID(req.UserID); err != nil {
		return nil, err
	}

	record, err := entity.NewGeneration(s.idGenerator.NewID(), req.UserID, req.Breed, req.Style, req.PreviewURLs, s.timeProvider)
	if err != nil {
		return nil, err
	}
	record.UserEmail = req.UserEmail
	if req.HDURLs != nil {
		record.HDURLs = req.HDURLs
	}
	record.Paid = req.Paid
	record.PaymentID = req.PaymentID
	record.AmountCents = req.AmountCents

	if err := s.generations.Create(ctx, record); err != nil {
		s.logger.Error("Failed to create generation record", map[string]any{
			"userId": req.UserID,
			"error":  err.Error(),
		})
		return nil, err
	}

	return record, nil
}

// ListRecords returns the user's generation records, newest first
func (s *Service) ListRecords(ctx context.Context, userID string) ([]*entity.Generation, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	return s.generations.ListByUser(ctx, userID)
}
