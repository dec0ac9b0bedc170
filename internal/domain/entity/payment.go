package entity

import "strconv"

// Checkout purposes carried in session metadata
const (
	PurposeCreditPurchase = "credit_purchase"
	PurposeHDUnlock       = "hd_unlock"
)

// Checkout metadata keys
const (
	MetaUserID       = "userId"
	MetaCredits      = "credits"
	MetaType         = "type"
	MetaGenerationID = "generation_id"
)

// MetaImageKey is the metadata key of the i-th HD image
func MetaImageKey(i int) string {
	return "image_" + strconv.Itoa(i)
}

// PaymentEventType names the verified events the service acts on
type PaymentEventType string

// Verified payment event types
const (
	EventCheckoutCompleted PaymentEventType = "checkout.session.completed"
)

// PaymentStatusPaid is the provider's payment status of a settled checkout
const PaymentStatusPaid = "paid"

// PaymentEvent is an already verified notification from the payment provider
type PaymentEvent struct {
	ID            string
	Type          PaymentEventType
	Purpose       string
	UserID        string
	Credits       string // raw metadata value, parsed by the ledger flow
	PaymentRef    string
	SessionID     string
	PaymentStatus string
}

// IsPaid reports whether the checkout behind the event has settled
func (e *PaymentEvent) IsPaid() bool {
	return e.PaymentStatus == PaymentStatusPaid
}

// IsCreditPurchase reports whether the event completes a credit purchase
func (e *PaymentEvent) IsCreditPurchase() bool {
	return e.Type == EventCheckoutCompleted && e.Purpose == PurposeCreditPurchase
}

// CheckoutRequest describes a hosted checkout session to open
type CheckoutRequest struct {
	UserID      string
	ProductName string
	Description string
	AmountCents int64
	Currency    string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// CheckoutSession is the provider's view of a checkout session
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	PaymentRef    string
	AmountTotal   int64
	Metadata      map[string]string
}

// IsPaid reports whether the session has been paid
func (s *CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}
