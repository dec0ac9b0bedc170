package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
)

// AddCredits adds two non-negative credit amounts and reports overflow
func AddCredits(balance, amount int64) (int64, error) {
	if amount > 0 && balance > math.MaxInt64-amount {
		return 0, errs.ErrAmountOverflow
	}
	return balance + amount, nil
}

// ParseCredits parses a positive whole number of credits, as found in payment metadata
func ParseCredits(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	credits, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if credits <= 0 {
		return 0, errs.ErrInvalidAmount
	}
	return credits, nil
}

// FormatCents converts an integer amount of cents to a decimal string.
// For example 999 becomes "9.99" and 6999 becomes "69.99".
func FormatCents(cents int64) string {
	isNegative := cents < 0
	if isNegative {
		cents = -cents
	}

	amountStr := strconv.FormatInt(cents, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	formatted := amountStr[:decimalPos] + "." + amountStr[decimalPos:]
	if isNegative {
		return "-" + formatted
	}
	return formatted
}
