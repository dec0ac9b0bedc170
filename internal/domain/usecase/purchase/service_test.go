package purchase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	mcore "github.com/amirhossein-jamali/petavatar-credits/mocks/port/core"
	mext "github.com/amirhossein-jamali/petavatar-credits/mocks/port/external"
	mpers "github.com/amirhossein-jamali/petavatar-credits/mocks/port/persistence"
	muse "github.com/amirhossein-jamali/petavatar-credits/mocks/port/usecase"
)

type purchaseMocks struct {
	ledger      *muse.MockLedgerUseCase
	gateway     *mext.MockCheckoutGateway
	generations *mpers.MockGenerationRepository
	logger      *mcore.MockLogger
}

func newPurchaseMocks(t *testing.T) *purchaseMocks {
	m := &purchaseMocks{
		ledger:      muse.NewMockLedgerUseCase(t),
		gateway:     mext.NewMockCheckoutGateway(t),
		generations: mpers.NewMockGenerationRepository(t),
		logger:      mcore.NewMockLogger(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()
	return m
}

func (m *purchaseMocks) service() *Service {
	return NewPurchaseService(m.ledger, m.gateway, m.generations, m.logger, Config{AppURL: "https://pets.example/"})
}

func TestService_CreateCreditCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a session for a listed package", func(t *testing.T) {
		m := newPurchaseMocks(t)

		// Setup mocks
		m.gateway.EXPECT().CreateCheckoutSession(ctx, mock.MatchedBy(func(req entity.CheckoutRequest) bool {
			return req.AmountCents == 2499 &&
				req.Currency == "usd" &&
				req.Metadata[entity.MetaUserID] == "user_1" &&
				req.Metadata[entity.MetaCredits] == "30" &&
				req.Metadata[entity.MetaType] == entity.PurposeCreditPurchase &&
				req.SuccessURL == "https://pets.example/credits/success?session_id={CHECKOUT_SESSION_ID}" &&
				req.CancelURL == "https://pets.example/credits/cancel"
		})).Return(&entity.CheckoutSession{ID: "cs_1", URL: "https://checkout/cs_1"}, nil)

		// Execute
		session, err := m.service().CreateCreditCheckout(ctx, "user_1", 30)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, "cs_1", session.ID)
		m.ledger.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown package", func(t *testing.T) {
		m := newPurchaseMocks(t)

		_, err := m.service().CreateCreditCheckout(ctx, "user_1", 25)

		assert.ErrorIs(t, err, errs.ErrInvalidPackage)
	})

	t.Run("wraps gateway failures", func(t *testing.T) {
		m := newPurchaseMocks(t)
		m.gateway.EXPECT().CreateCheckoutSession(ctx, mock.Anything).Return(nil, errors.New("stripe down"))
		m.logger.EXPECT().Error("Failed to create credit checkout session", mock.Anything).Return()

		_, err := m.service().CreateCreditCheckout(ctx, "user_1", 10)

		assert.ErrorIs(t, err, errs.ErrPaymentGateway)
	})
}

func TestService_CreateHDCheckout(t *testing.T) {
	ctx := context.Background()
	m := newPurchaseMocks(t)

	m.gateway.EXPECT().CreateCheckoutSession(ctx, mock.MatchedBy(func(req entity.CheckoutRequest) bool {
		return req.AmountCents == 499 &&
			req.Metadata[entity.MetaType] == entity.PurposeHDUnlock &&
			req.Metadata[entity.MetaGenerationID] == "gen_1" &&
			req.Metadata["image_0"] == "a" &&
			req.Metadata["image_3"] == "d" &&
			req.Metadata["image_4"] == ""
	})).Return(&entity.CheckoutSession{ID: "cs_hd"}, nil)

	session, err := m.service().CreateHDCheckout(ctx, "user_1", []string{"a", "b", "c", "d", "e"}, "gen_1")

	require.NoError(t, err)
	assert.Equal(t, "cs_hd", session.ID)

	_, err = m.service().CreateHDCheckout(ctx, "user_1", nil, "gen_1")
	assert.ErrorIs(t, err, errs.ErrInvalidGenerationRequest)
}

func TestService_HandlePaymentEvent(t *testing.T) {
	ctx := context.Background()
	completed := func() *entity.PaymentEvent {
		return &entity.PaymentEvent{
			ID:            "evt_1",
			Type:          entity.EventCheckoutCompleted,
			Purpose:       entity.PurposeCreditPurchase,
			UserID:        "user_1",
			Credits:       "30",
			PaymentRef:    "pi_1",
			SessionID:     "cs_1",
			PaymentStatus: entity.PaymentStatusPaid,
		}
	}

	tests := []struct {
		name            string
		event           func() *entity.PaymentEvent
		setupMocks      func(m *purchaseMocks)
		expectedHandled bool
		expectedDup     bool
		expectedErr     error
	}{
		{
			name:  "credits a completed purchase",
			event: completed,
			setupMocks: func(m *purchaseMocks) {
				m.ledger.EXPECT().Credit(ctx, entity.CreditRequest{
					UserID: "user_1", Amount: 30, Kind: entity.KindPurchase,
					ExternalPaymentRef: "pi_1", RelatedID: "cs_1",
				}).Return(&entity.CreditResult{Success: true, NewBalance: 33}, nil)
			},
			expectedHandled: true,
		},
		{
			name:  "reports replayed delivery as duplicate",
			event: completed,
			setupMocks: func(m *purchaseMocks) {
				m.ledger.EXPECT().Credit(ctx, mock.Anything).
					Return(&entity.CreditResult{Success: true, NewBalance: 33, Duplicate: true}, nil)
			},
			expectedHandled: true,
			expectedDup:     true,
		},
		{
			name: "falls back to the session id without a payment intent",
			event: func() *entity.PaymentEvent {
				e := completed()
				e.PaymentRef = ""
				return e
			},
			setupMocks: func(m *purchaseMocks) {
				m.ledger.EXPECT().Credit(ctx, mock.MatchedBy(func(req entity.CreditRequest) bool {
					return req.ExternalPaymentRef == "cs_1"
				})).Return(&entity.CreditResult{Success: true, NewBalance: 30}, nil)
			},
			expectedHandled: true,
		},
		{
			name: "ignores hd unlock sessions",
			event: func() *entity.PaymentEvent {
				e := completed()
				e.Purpose = entity.PurposeHDUnlock
				return e
			},
			setupMocks: func(m *purchaseMocks) {},
		},
		{
			name: "skips a session whose payment has not settled",
			event: func() *entity.PaymentEvent {
				e := completed()
				e.PaymentStatus = "unpaid"
				return e
			},
			setupMocks: func(m *purchaseMocks) {},
		},
		{
			name: "rejects missing user id",
			event: func() *entity.PaymentEvent {
				e := completed()
				e.UserID = ""
				return e
			},
			setupMocks:  func(m *purchaseMocks) {},
			expectedErr: errs.ErrInvalidPaymentEvent,
		},
		{
			name: "rejects non numeric credits",
			event: func() *entity.PaymentEvent {
				e := completed()
				e.Credits = "thirty"
				return e
			},
			setupMocks:  func(m *purchaseMocks) {},
			expectedErr: errs.ErrInvalidPaymentEvent,
		},
		{
			name:  "surfaces ledger failure so the provider retries",
			event: completed,
			setupMocks: func(m *purchaseMocks) {
				m.ledger.EXPECT().Credit(ctx, mock.Anything).Return(nil, errs.ErrDatabaseConnection)
				m.logger.EXPECT().Error("Failed to apply credit purchase", mock.Anything).Return()
			},
			expectedErr: errs.ErrDatabaseConnection,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newPurchaseMocks(t)
			tc.setupMocks(m)

			outcome, err := m.service().HandlePaymentEvent(ctx, tc.event())

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedHandled, outcome.Handled)
			assert.Equal(t, tc.expectedDup, outcome.Duplicate)
		})
	}
}

func TestService_VerifyPayment(t *testing.T) {
	ctx := context.Background()
	paidSession := func() *entity.CheckoutSession {
		return &entity.CheckoutSession{
			ID:            "cs_hd",
			PaymentStatus: "paid",
			PaymentRef:    "pi_9",
			AmountTotal:   499,
			Metadata: map[string]string{
				entity.MetaUserID:       "user_1",
				entity.MetaGenerationID: "gen_1",
				"image_0":               "a",
				"image_1":               "b",
			},
		}
	}

	t.Run("returns images and marks the generation paid", func(t *testing.T) {
		m := newPurchaseMocks(t)
		m.gateway.EXPECT().GetCheckoutSession(ctx, "cs_hd").Return(paidSession(), nil)
		m.generations.EXPECT().Update(ctx, "gen_1", mock.MatchedBy(func(u entity.GenerationUpdate) bool {
			return *u.Paid && *u.PaymentID == "pi_9" && *u.AmountCents == 499 && len(u.HDURLs) == 2
		})).Return(&entity.Generation{ID: "gen_1"}, nil)

		verified, err := m.service().VerifyPayment(ctx, "user_1", "cs_hd")

		require.NoError(t, err)
		assert.True(t, verified.Paid)
		assert.Equal(t, []string{"a", "b"}, verified.Images)
		assert.Equal(t, int64(499), verified.AmountCents)
	})

	t.Run("still succeeds when the record update fails", func(t *testing.T) {
		m := newPurchaseMocks(t)
		m.gateway.EXPECT().GetCheckoutSession(ctx, "cs_hd").Return(paidSession(), nil)
		m.generations.EXPECT().Update(ctx, "gen_1", mock.Anything).Return(nil, errs.ErrDatabaseConnection)
		m.logger.EXPECT().Error("Failed to mark generation paid", mock.Anything).Return()

		verified, err := m.service().VerifyPayment(ctx, "user_1", "cs_hd")

		require.NoError(t, err)
		assert.Len(t, verified.Images, 2)
	})

	t.Run("rejects unpaid session", func(t *testing.T) {
		m := newPurchaseMocks(t)
		session := paidSession()
		session.PaymentStatus = "unpaid"
		m.gateway.EXPECT().GetCheckoutSession(ctx, "cs_hd").Return(session, nil)

		_, err := m.service().VerifyPayment(ctx, "user_1", "cs_hd")

		assert.ErrorIs(t, err, errs.ErrPaymentNotCompleted)
	})

	t.Run("rejects another user's session", func(t *testing.T) {
		m := newPurchaseMocks(t)
		m.gateway.EXPECT().GetCheckoutSession(ctx, "cs_hd").Return(paidSession(), nil)

		_, err := m.service().VerifyPayment(ctx, "user_2", "cs_hd")

		assert.ErrorIs(t, err, errs.ErrGenerationNotOwned)
	})

	t.Run("rejects empty session id", func(t *testing.T) {
		m := newPurchaseMocks(t)

		_, err := m.service().VerifyPayment(ctx, "user_1", "")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestService_ListPackages(t *testing.T) {
	m := newPurchaseMocks(t)

	packages := m.service().ListPackages()
	packages[0].PriceCents = 1

	assert.Len(t, packages, 3)
	assert.Equal(t, int64(999), entity.CreditPackages[0].PriceCents)
}
