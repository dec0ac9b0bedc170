package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
)

// StripeGateway implements the CheckoutGateway port with Stripe Checkout
type StripeGateway struct {
	client *stripe.Client
	logger coreport.Logger
}

// NewStripeGateway creates a gateway authenticated with the secret key
func NewStripeGateway(secretKey string, logger coreport.Logger) *StripeGateway {
	return &StripeGateway{
		client: stripe.NewClient(secretKey),
		logger: logger,
	}
}

// CreateCheckoutSession opens a hosted checkout session for a single line item
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req entity.CheckoutRequest) (*entity.CheckoutSession, error) {
	session, err := g.client.V1CheckoutSessions.Create(ctx, checkoutParams(req))
	if err != nil {
		g.logger.Error("Failed to create checkout session", map[string]any{
			"user_id": req.UserID,
			"amount":  req.AmountCents,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: create checkout session: %s", errs.ErrPaymentGateway, err.Error())
	}

	g.logger.Info("Checkout session created", map[string]any{
		"user_id":    req.UserID,
		"session_id": session.ID,
		"purpose":    req.Metadata["type"],
	})
	return toCheckoutSession(session), nil
}

// GetCheckoutSession retrieves a session by id
func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*entity.CheckoutSession, error) {
	session, err := g.client.V1CheckoutSessions.Retrieve(ctx, sessionID, nil)
	if err != nil {
		g.logger.Warn("Failed to retrieve checkout session", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: retrieve checkout session: %s", errs.ErrPaymentGateway, err.Error())
	}
	return toCheckoutSession(session), nil
}

func checkoutParams(req entity.CheckoutRequest) *stripe.CheckoutSessionCreateParams {
	currency := req.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	product := &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
		Name: stripe.String(req.ProductName),
	}
	if req.Description != "" {
		product.Description = stripe.String(req.Description)
	}

	return &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
		ClientReferenceID:  stripe.String(req.UserID),
		Metadata:           req.Metadata,
		PaymentIntentData: &stripe.CheckoutSessionCreatePaymentIntentDataParams{
			Metadata: req.Metadata,
		},
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{{
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(req.AmountCents),
			},
			Quantity: stripe.Int64(1),
		}},
	}
}

func toCheckoutSession(session *stripe.CheckoutSession) *entity.CheckoutSession {
	out := &entity.CheckoutSession{
		ID:            session.ID,
		URL:           session.URL,
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   session.AmountTotal,
		Metadata:      session.Metadata,
	}
	if session.PaymentIntent != nil {
		out.PaymentRef = session.PaymentIntent.ID
	}
	return out
}
