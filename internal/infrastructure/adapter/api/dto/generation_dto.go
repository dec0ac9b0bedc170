package dto

import (
	"time"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

// GenerateRequest represents the API request for POST /generate
type GenerateRequest struct {
	Breed string `json:"breed" binding:"required,max=100"`
	Style string `json:"style" binding:"omitempty,max=20"`
}

// GenerateResponse returns preview images
type GenerateResponse struct {
	Success      bool     `json:"success"`
	GenerationID string   `json:"generation_id,omitempty"`
	Images       []string `json:"images"`
	Breed        string   `json:"breed"`
	Style        string   `json:"style"`
}

// GenerateHDRequest represents the API request for POST /generate-hd
type GenerateHDRequest struct {
	GenerationID string   `json:"generation_id" binding:"required"`
	Style        string   `json:"style"`
	Images       []string `json:"images"`
}

// GenerateHDResponse is returned after credits were spent on an HD unlock
type GenerateHDResponse struct {
	Success          bool     `json:"success"`
	Paid             bool     `json:"paid"`
	Images           []string `json:"images"`
	CreditsUsed      int64    `json:"creditsUsed"`
	RemainingCredits int64    `json:"remainingCredits"`
}

// CreateGenerationRequest represents the API request for POST /generations
type CreateGenerationRequest struct {
	Breed       string   `json:"breed" binding:"required"`
	Style       string   `json:"style" binding:"required"`
	PreviewURLs []string `json:"preview_urls" binding:"required,min=1"`
	HDURLs      []string `json:"hd_urls"`
	Paid        bool     `json:"paid"`
	PaymentID   string   `json:"payment_id"`
	Amount      int64    `json:"amount" binding:"gte=0"`
	UserEmail   string   `json:"user_email" binding:"omitempty,email"`
}

// GenerationResponse is a stored generation record
type GenerationResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserEmail   string    `json:"user_email,omitempty"`
	Breed       string    `json:"breed"`
	Style       string    `json:"style"`
	PreviewURLs []string  `json:"preview_urls"`
	HDURLs      []string  `json:"hd_urls"`
	Paid        bool      `json:"paid"`
	PaymentID   string    `json:"payment_id,omitempty"`
	Amount      int64     `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HDCheckoutRequest represents the API request for POST /checkout
type HDCheckoutRequest struct {
	Images       []string `json:"images" binding:"required,min=1"`
	GenerationID string   `json:"generation_id"`
}

// VerifyPaymentRequest represents the API request for POST /verify-payment
type VerifyPaymentRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// VerifyPaymentResponse reports a paid one-off checkout
type VerifyPaymentResponse struct {
	Success bool     `json:"success"`
	Paid    bool     `json:"paid"`
	Images  []string `json:"images"`
	Amount  int64    `json:"amount"`
}

// FromGeneration maps a generation record to its API shape
func FromGeneration(g *entity.Generation) GenerationResponse {
	return GenerationResponse{
		ID:          g.ID,
		UserID:      g.UserID,
		UserEmail:   g.UserEmail,
		Breed:       g.Breed,
		Style:       string(g.Style),
		PreviewURLs: nonNil(g.PreviewURLs),
		HDURLs:      nonNil(g.HDURLs),
		Paid:        g.Paid,
		PaymentID:   g.PaymentID,
		Amount:      g.AmountCents,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// FromGenerations maps a list of records
func FromGenerations(generations []*entity.Generation) []GenerationResponse {
	out := make([]GenerationResponse, len(generations))
	for i, g := range generations {
		out[i] = FromGeneration(g)
	}
	return out
}

func nonNil(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}
