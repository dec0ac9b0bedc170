package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
)

// Style is an avatar art style
type Style string

// Supported styles
const (
	StyleCute   Style = "cute"
	StyleChibi  Style = "chibi"
	StyleKawaii Style = "kawaii"
)

// DefaultStyle is used whenever a style is unknown
const DefaultStyle = StyleCute

var styleCredits = map[Style]int64{
	StyleCute:   1,
	StyleChibi:  2,
	StyleKawaii: 3,
}

var stylePrompts = map[Style]string{
	StyleCute:   "cute chibi style, big head, kawaii, adorable, soft colors",
	StyleChibi:  "chibi anime style, 2 heads tall, sticker style, simple background",
	StyleKawaii: "kawaii Japanese style, pastel colors, cute expression, anime",
}

// NormalizeStyle lowercases the style and maps unknown values to the default
func NormalizeStyle(style string) Style {
	s := Style(strings.ToLower(strings.TrimSpace(style)))
	if _, ok := styleCredits[s]; ok {
		return s
	}
	return DefaultStyle
}

// CreditsForStyle returns the HD unlock cost of a style. Unknown styles cost the same as cute.
func CreditsForStyle(style string) int64 {
	return styleCredits[NormalizeStyle(style)]
}

// BuildPrompt renders the image provider prompt for a breed and style
func BuildPrompt(breed, style string) string {
	return fmt.Sprintf(
		"A %s pet, %s, high quality illustration, white background, centered composition, digital art",
		strings.TrimSpace(breed), stylePrompts[NormalizeStyle(style)],
	)
}

// CreditPackage is one entry of the credit price table
type CreditPackage struct {
	Credits    int64  `json:"credits"`
	PriceCents int64  `json:"priceCents"`
	Label      string `json:"label"`
	Popular    bool   `json:"popular"`
}

// CreditPackages is the fixed price table offered at checkout
var CreditPackages = []CreditPackage{
	{Credits: 10, PriceCents: 999, Label: "10 credits"},
	{Credits: 30, PriceCents: 2499, Label: "30 credits", Popular: true},
	{Credits: 100, PriceCents: 6999, Label: "100 credits"},
}

// FindCreditPackage looks a package up by its credit amount
func FindCreditPackage(credits int64) (CreditPackage, error) {
	for _, pkg := range CreditPackages {
		if pkg.Credits == credits {
			return pkg, nil
		}
	}
	return CreditPackage{}, fmt.Errorf("%w: %d credits", errs.ErrInvalidPackage, credits)
}

// Pay-per-unlock checkout for a single generation
const (
	HDUnlockPriceCents int64 = 499
	HDUnlockImageCount       = 4
	Currency                 = "usd"
)
