package dto

import (
	"time"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
)

// TransactionResponse is one ledger entry in the credits response
type TransactionResponse struct {
	ID                 string    `json:"id"`
	Amount             int64     `json:"amount"`
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	RelatedID          string    `json:"related_id,omitempty"`
	ExternalPaymentRef string    `json:"external_payment_ref,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreditsResponse represents the API response for GET /credits
type CreditsResponse struct {
	Credits      int64                 `json:"credits"`
	Transactions []TransactionResponse `json:"transactions,omitempty"`
}

// PackageResponse is one entry of the credit price table
type PackageResponse struct {
	Credits    int64  `json:"credits"`
	PriceCents int64  `json:"price"`
	Label      string `json:"label"`
	Popular    bool   `json:"popular,omitempty"`
}

// PackagesResponse lists the purchasable credit packages
type PackagesResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// PurchaseRequest represents the API request for POST /credits/purchase
type PurchaseRequest struct {
	Credits int64 `json:"credits" binding:"required,gt=0"`
}

// CheckoutResponse carries the hosted checkout redirect
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// WebhookResponse acknowledges a provider callback
type WebhookResponse struct {
	Received  bool `json:"received"`
	Duplicate bool `json:"duplicate,omitempty"`
}

// FromTransactions maps ledger entries to their API shape
func FromTransactions(transactions []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = TransactionResponse{
			ID:                 t.ID,
			Amount:             t.Amount,
			Type:               string(t.Kind),
			Description:        t.Description,
			RelatedID:          t.RelatedID,
			ExternalPaymentRef: t.ExternalPaymentRef,
			CreatedAt:          t.CreatedAt,
		}
	}
	return out
}

// FromPackages maps the price table to its API shape
func FromPackages(packages []entity.CreditPackage) PackagesResponse {
	out := PackagesResponse{Packages: make([]PackageResponse, len(packages))}
	for i, p := range packages {
		out.Packages[i] = PackageResponse{
			Credits:    p.Credits,
			PriceCents: p.PriceCents,
			Label:      p.Label,
			Popular:    p.Popular,
		}
	}
	return out
}
