package generation

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// GeneratePreviews renders the preview images for a breed and style and stores a record of them.
// Previews are free; no ledger access happens here.
func (s *Service) GeneratePreviews(ctx context.Context, req usecase.PreviewRequest) (*usecase.PreviewResult, error) {
	if err := validateUserID(req.UserID); err != nil {
		return nil, err
	}
	breed := strings.TrimSpace(req.Breed)
	if breed == "" {
		return nil, errs.ErrInvalidGenerationRequest
	}
	style := entity.NormalizeStyle(req.Style)

	fingerprint := entity.RequestFingerprint(breed, string(style))
	release, err := s.claim(ctx, req.UserID, fingerprint)
	if err != nil {
		return nil, err
	}
	defer release()

	prompt := entity.BuildPrompt(breed, string(style))
	urls, attempts, lastErr := s.generateBatch(ctx, prompt, s.config.PreviewImages)
	if len(urls) == 0 {
		genErr := &errs.GenerationError{Breed: breed, Style: string(style), Attempts: attempts, Err: lastErr}
		s.logger.Error("Preview generation exhausted all attempts", genErr.LogFields())
		return nil, genErr
	}

	if len(urls) < s.config.PreviewImages {
		s.logger.Warn("Preview generation returned partial results", map[string]any{
			"userId":    req.UserID,
			"requested": s.config.PreviewImages,
			"produced":  len(urls),
		})
	}

	result := &usecase.PreviewResult{
		Images:   urls,
		Breed:    breed,
		Style:    style,
		Attempts: attempts,
	}
	if record := s.storePreview(ctx, req, breed, style, fingerprint, urls); record != nil {
		result.GenerationID = record.ID
	}

	s.logger.Info("Previews generated", map[string]any{
		"userId":       req.UserID,
		"breed":        breed,
		"style":        string(style),
		"images":       len(urls),
		"attempts":     attempts,
		"generationId": result.GenerationID,
	})

	return result, nil
}

// storePreview persists the generation record. Failures are logged, not returned: the
// caller already has its images.
func (s *Service) storePreview(
	ctx context.Context,
	req usecase.PreviewRequest,
	breed string,
	style entity.Style,
	fingerprint string,
	urls []string,
) *entity.Generation {
	record, err := entity.NewGeneration(s.idGenerator.NewID(), req.UserID, breed, string(style), urls, s.timeProvider)
	if err != nil {
		s.logger.Warn("Failed to build generation record", map[string]any{"error": err.Error()})
		return nil
	}
	record.UserEmail = req.UserEmail
	record.RequestFingerprint = fingerprint

	if err := s.generations.Create(ctx, record); err != nil {
		s.logger.Warn("Failed to store generation record", map[string]any{
			"userId": req.UserID,
			"error":  err.Error(),
		})
		return nil
	}
	return record
}
