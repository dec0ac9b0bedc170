package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInsufficientCredits  = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidUserID        = 4003
	CodeDuplicatePayment     = 4004
	CodeConstraintViolation  = 4005
	CodeAmountOverflow       = 4006
	CodeInvalidPackage       = 4007
	CodeInvalidGeneration    = 4008
	CodeRequestInProgress    = 4009
	CodeInvalidPaymentEvent  = 4010
	CodePaymentNotCompleted  = 4011
	CodeUnauthorized         = 4012
	CodeAccountNotFound      = 4040
	CodeGenerationNotFound   = 4041
	CodeGenerationNotAllowed = 4030

	// 5xxx - Server errors
	CodeInternalServer    = 5000
	CodeGenerationFailed  = 5020
	CodeStoreUnavailable  = 5030
	CodePaymentGatewayErr = 5021
)

// Base error types
var (
	// ErrInsufficientCredits is returned when an account cannot cover a debit
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrInvalidAmount is returned when a credit or debit amount is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrNegativeBalance is returned when an operation would result in negative balance
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidTransactionKind is returned when the kind is not one of the ledger kinds
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrDuplicatePayment is returned when a payment reference was already applied
	ErrDuplicatePayment = errors.New("payment reference already applied")

	// ErrDuplicateAccount is returned when trying to create an account that already exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrGenerationNotFound is returned when the generation record doesn't exist
	ErrGenerationNotFound = errors.New("generation not found")

	// ErrGenerationNotOwned is returned when a generation belongs to another user
	ErrGenerationNotOwned = errors.New("generation belongs to another user")

	// ErrInvalidPackage is returned when the requested credit package is not on the price table
	ErrInvalidPackage = errors.New("invalid credit package")

	// ErrInvalidGenerationRequest is returned when breed, style or image data is missing
	ErrInvalidGenerationRequest = errors.New("invalid generation request")

	// ErrGenerationFailed is returned when the image provider produced no usable output
	ErrGenerationFailed = errors.New("image generation failed")

	// ErrRequestInProgress is returned when an identical request is already being served
	ErrRequestInProgress = errors.New("identical request already in progress")

	// ErrInvalidSignature is returned when a payment webhook fails verification
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvalidPaymentEvent is returned when a verified event carries unusable metadata
	ErrInvalidPaymentEvent = errors.New("invalid payment event metadata")

	// ErrPaymentNotCompleted is returned when a checkout session is not paid
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// ErrPaymentGateway is returned when the payment provider call fails
	ErrPaymentGateway = errors.New("payment gateway error")

	// ErrUnauthorized is returned when the request carries no valid identity
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrDuplicatePayment):
		return CodeDuplicatePayment
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidPackage):
		return CodeInvalidPackage
	case errors.Is(err, ErrInvalidGenerationRequest):
		return CodeInvalidGeneration
	case errors.Is(err, ErrRequestInProgress):
		return CodeRequestInProgress
	case errors.Is(err, ErrInvalidSignature), errors.Is(err, ErrInvalidPaymentEvent):
		return CodeInvalidPaymentEvent
	case errors.Is(err, ErrPaymentNotCompleted):
		return CodePaymentNotCompleted
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidTransactionKind):
		return CodeInvalidRequest
	case errors.Is(err, ErrGenerationNotOwned):
		return CodeGenerationNotAllowed
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrGenerationNotFound):
		return CodeGenerationNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrGenerationFailed):
		return CodeGenerationFailed
	case errors.Is(err, ErrPaymentGateway):
		return CodePaymentGatewayErr
	case errors.Is(err, ErrDatabaseConnection):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// LedgerError represents a failed ledger mutation
type LedgerError struct {
	UserID    string
	Operation string
	Amount    int64
	Err       error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed for user %s (amount: %d): %v",
		e.Operation, e.UserID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"user_id":    e.UserID,
		"operation":  e.Operation,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError wraps err with the ledger operation that produced it
func NewLedgerError(userID, operation string, amount int64, err error) error {
	return &LedgerError{
		UserID:    userID,
		Operation: operation,
		Amount:    amount,
		Err:       err,
	}
}

// InsufficientCreditsError carries the amounts the HTTP layer reports with a 402
type InsufficientCreditsError struct {
	UserID   string
	Required int64
	Current  int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %s: required %d, available %d",
		e.UserID, e.Required, e.Current)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"user_id":    e.UserID,
		"required":   e.Required,
		"current":    e.Current,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID string, required, current int64) error {
	return &InsufficientCreditsError{
		UserID:   userID,
		Required: required,
		Current:  current,
	}
}

// DuplicatePaymentError describes a payment reference that was already applied
type DuplicatePaymentError struct {
	UserID     string
	PaymentRef string
}

// Error implements the error interface
func (e *DuplicatePaymentError) Error() string {
	return fmt.Sprintf("duplicate payment detected: ref=%s for user %s", e.PaymentRef, e.UserID)
}

// Is checks if the target error is an ErrDuplicatePayment
func (e *DuplicatePaymentError) Is(target error) bool {
	return target == ErrDuplicatePayment
}

// LogFields returns a map of fields for structured logging
func (e *DuplicatePaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "duplicate_payment",
		"user_id":     e.UserID,
		"payment_ref": e.PaymentRef,
		"error_code":  CodeDuplicatePayment,
	}
}

// NewDuplicatePaymentError creates a new detailed duplicate payment error
func NewDuplicatePaymentError(userID, paymentRef string) error {
	return &DuplicatePaymentError{
		UserID:     userID,
		PaymentRef: paymentRef,
	}
}

// GenerationError describes an image generation that produced no usable output
type GenerationError struct {
	Breed    string
	Style    string
	Attempts int
	Err      error
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for %s/%s after %d attempts: %v",
		e.Breed, e.Style, e.Attempts, e.Err)
}

// Unwrap returns the underlying error
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrGenerationFailed
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// LogFields returns a map of fields for structured logging
func (e *GenerationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "generation_failed",
		"breed":      e.Breed,
		"style":      e.Style,
		"attempts":   e.Attempts,
		"error_code": CodeGenerationFailed,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// IsDuplicatePaymentError checks if the error is a duplicate payment error
func IsDuplicatePaymentError(err error) bool {
	return errors.Is(err, ErrDuplicatePayment)
}

// IsInsufficientCreditsError checks if the error is related to insufficient credits
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrGenerationNotFound)
}

// IsClientError reports whether err should be surfaced as a 4xx response
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}
