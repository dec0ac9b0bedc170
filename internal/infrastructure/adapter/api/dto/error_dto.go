package dto

// Symbolic error codes clients branch on
const (
	CodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	CodeRequestInProgress   = "REQUEST_IN_PROGRESS"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	ErrorCode int    `json:"errorCode"`
}

// InsufficientCreditsResponse is the 402 body returned when a debit is refused
type InsufficientCreditsResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	ErrorCode int    `json:"errorCode"`
	Required  int64  `json:"required"`
	Current   int64  `json:"current"`
}
