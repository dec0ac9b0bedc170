package usecase

import (
	"context"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

// PreviewRequest asks for preview images of a breed in a style
type PreviewRequest struct {
	UserID    string
	UserEmail string
	Breed     string
	Style     string
}

// PreviewResult holds the generated previews
type PreviewResult struct {
	GenerationID string // empty when the record could not be stored
	Images       []string
	Breed        string
	Style        entity.Style
	Attempts     int
}

// HDRequest asks to unlock HD images with credits
type HDRequest struct {
	UserID       string
	GenerationID string
	Style        string
	Images       []string
}

// HDResult is returned after a successful credit-paid unlock
type HDResult struct {
	Images           []string
	CreditsUsed      int64
	RemainingBalance int64
	RecordUpdated    bool
}

// CreateGenerationRequest stores a generation record produced elsewhere
type CreateGenerationRequest struct {
	UserID      string
	UserEmail   string
	Breed       string
	Style       string
	PreviewURLs []string
	HDURLs      []string
	Paid        bool
	PaymentID   string
	AmountCents int64
}

// GenerationUseCase defines the image generation flows
type GenerationUseCase interface {
	// GeneratePreviews calls the image provider with bounded retries and stores a record
	GeneratePreviews(ctx context.Context, req PreviewRequest) (*PreviewResult, error)

	// UnlockHD debits credits for a generation once usable HD output exists.
	// Insufficient credits are returned as an InsufficientCreditsError.
	UnlockHD(ctx context.Context, req HDRequest) (*HDResult, error)

	// CreateRecord stores a generation record
	CreateRecord(ctx context.Context, req CreateGenerationRequest) (*entity.Generation, error)

	// ListRecords returns the user's generation records, newest first
	ListRecords(ctx context.Context, userID string) ([]*entity.Generation, error)
}
