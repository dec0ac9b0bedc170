package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	tport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
)

// PreviewImageCount is how many previews a generation request produces
const PreviewImageCount = 4

// Generation is the record of one image generation request
type Generation struct {
	ID                 string
	UserID             string
	UserEmail          string
	Breed              string
	Style              Style
	PreviewURLs        []string
	HDURLs             []string
	Paid               bool
	PaymentID          string
	AmountCents        int64
	RequestFingerprint string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewGeneration validates and creates a generation record
func NewGeneration(id, userID, breed, style string, previewURLs []string, timeProvider tport.TimeProvider) (*Generation, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(breed) == "" || strings.TrimSpace(style) == "" || len(previewURLs) == 0 {
		return nil, errs.ErrInvalidGenerationRequest
	}

	now := timeProvider.Now()
	return &Generation{
		ID:          id,
		UserID:      userID,
		Breed:       strings.TrimSpace(breed),
		Style:       NormalizeStyle(style),
		PreviewURLs: previewURLs,
		HDURLs:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// OwnedBy reports whether the record belongs to userID
func (g *Generation) OwnedBy(userID string) bool {
	return g.UserID == userID
}

// creditsPaymentPrefix marks generations unlocked with credits rather than a checkout
const creditsPaymentPrefix = "credits_"

// CreditsPaymentID is the payment id recorded on a generation unlocked with credits at t
func CreditsPaymentID(t time.Time) string {
	return creditsPaymentPrefix + strconv.FormatInt(t.UnixMilli(), 10)
}

// GenerationUpdate is a partial update of a generation record. Nil fields are left unchanged.
type GenerationUpdate struct {
	HDURLs      []string
	Paid        *bool
	PaymentID   *string
	AmountCents *int64
}

// Apply copies the non-nil fields onto g
func (u GenerationUpdate) Apply(g *Generation, timeProvider tport.TimeProvider) {
	if u.HDURLs != nil {
		g.HDURLs = u.HDURLs
	}
	if u.Paid != nil {
		g.Paid = *u.Paid
	}
	if u.PaymentID != nil {
		g.PaymentID = *u.PaymentID
	}
	if u.AmountCents != nil {
		g.AmountCents = *u.AmountCents
	}
	g.UpdatedAt = timeProvider.Now()
}

// RequestFingerprint hashes the normalized parts of a request so that identical requests
// from the same user collide on the same guard key.
func RequestFingerprint(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = strings.ToLower(strings.TrimSpace(p))
	}
	sum := sha256.Sum256([]byte(strings.Join(normalized, "|")))
	return hex.EncodeToString(sum[:])
}

// UsableURLs drops empty entries
func UsableURLs(urls []string) []string {
	usable := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			usable = append(usable, u)
		}
	}
	return usable
}
