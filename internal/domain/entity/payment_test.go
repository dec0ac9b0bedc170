package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentEvent_IsCreditPurchase(t *testing.T) {
	assert.True(t, (&PaymentEvent{Type: EventCheckoutCompleted, Purpose: PurposeCreditPurchase}).IsCreditPurchase())
	assert.False(t, (&PaymentEvent{Type: EventCheckoutCompleted, Purpose: PurposeHDUnlock}).IsCreditPurchase())
	assert.False(t, (&PaymentEvent{Type: "payment_intent.created", Purpose: PurposeCreditPurchase}).IsCreditPurchase())
}

func TestCheckoutSession_IsPaid(t *testing.T) {
	assert.True(t, (&CheckoutSession{PaymentStatus: "paid"}).IsPaid())
	assert.False(t, (&CheckoutSession{PaymentStatus: "unpaid"}).IsPaid())
}
