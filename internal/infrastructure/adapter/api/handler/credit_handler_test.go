package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/logger"
	mockexternal "github.com/amirhossein-jamali/petavatar-credits/mocks/port/external"
	mockusecase "github.com/amirhossein-jamali/petavatar-credits/mocks/port/usecase"
)

type creditMocks struct {
	ledger   *mockusecase.MockLedgerUseCase
	purchase *mockusecase.MockPurchaseUseCase
	events   *mockexternal.MockVerifiedEventSource
}

func setupCreditHandler(t *testing.T) (*creditMocks, *CreditHandler) {
	m := &creditMocks{
		ledger:   mockusecase.NewMockLedgerUseCase(t),
		purchase: mockusecase.NewMockPurchaseUseCase(t),
		events:   mockexternal.NewMockVerifiedEventSource(t),
	}
	return m, NewCreditHandler(m.ledger, m.purchase, m.events, logger.NewNoopLogger())
}

func TestCreditHandler_GetCredits(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		setupMocks     func(m *creditMocks)
		expectedStatus int
		check          func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:  "balance only",
			query: "",
			setupMocks: func(m *creditMocks) {
				m.ledger.EXPECT().GetBalance(mock.Anything, testUserID).Return(int64(3), nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"credits":3}`, w.Body.String())
			},
		},
		{
			name:  "with transactions",
			query: "?transactions=true&limit=10",
			setupMocks: func(m *creditMocks) {
				m.ledger.EXPECT().GetBalance(mock.Anything, testUserID).Return(int64(2), nil)
				m.ledger.EXPECT().ListTransactions(mock.Anything, testUserID, 10).Return([]*entity.Transaction{
					{ID: "tx-2", UserID: testUserID, Amount: -1, Kind: entity.KindGeneration, Description: "HD unlock", RelatedID: "gen_1", CreatedAt: createdAt},
					{ID: "tx-1", UserID: testUserID, Amount: 3, Kind: entity.KindReward, Description: entity.NewAccountGrantDescription, CreatedAt: createdAt},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				body := decode[dto.CreditsResponse](t, w)
				assert.Equal(t, int64(2), body.Credits)
				if assert.Len(t, body.Transactions, 2) {
					assert.Equal(t, "generation", body.Transactions[0].Type)
					assert.Equal(t, "gen_1", body.Transactions[0].RelatedID)
				}
			},
		},
		{
			name:  "invalid limit",
			query: "?transactions=true&limit=-3",
			setupMocks: func(m *creditMocks) {
				m.ledger.EXPECT().GetBalance(mock.Anything, testUserID).Return(int64(2), nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "store unavailable",
			query: "",
			setupMocks: func(m *creditMocks) {
				m.ledger.EXPECT().GetBalance(mock.Anything, testUserID).
					Return(int64(0), domainerr.NewLedgerError(testUserID, "get_balance", 0, domainerr.ErrDatabaseConnection))
			},
			expectedStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				body := decode[dto.ErrorResponse](t, w)
				assert.Equal(t, "Failed to fetch credits", body.Error)
				assert.Equal(t, domainerr.CodeStoreUnavailable, body.ErrorCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup mocks
			m, h := setupCreditHandler(t)
			tt.setupMocks(m)
			router := newTestRouter()
			router.GET("/credits", h.GetCredits)

			// Execute
			w := doJSON(t, router, http.MethodGet, "/credits"+tt.query, nil)

			// Assertions
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}

func TestCreditHandler_Purchase(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMocks     func(m *creditMocks)
		expectedStatus int
	}{
		{
			name: "opens checkout",
			body: dto.PurchaseRequest{Credits: 30},
			setupMocks: func(m *creditMocks) {
				m.purchase.EXPECT().CreateCreditCheckout(mock.Anything, testUserID, int64(30)).
					Return(&entity.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown package",
			body: dto.PurchaseRequest{Credits: 7},
			setupMocks: func(m *creditMocks) {
				m.purchase.EXPECT().CreateCreditCheckout(mock.Anything, testUserID, int64(7)).
					Return(nil, domainerr.ErrInvalidPackage)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing credits",
			body:           `{}`,
			setupMocks:     func(m *creditMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "provider down",
			body: dto.PurchaseRequest{Credits: 10},
			setupMocks: func(m *creditMocks) {
				m.purchase.EXPECT().CreateCreditCheckout(mock.Anything, testUserID, int64(10)).
					Return(nil, domainerr.ErrPaymentGateway)
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, h := setupCreditHandler(t)
			tt.setupMocks(m)
			router := newTestRouter()
			router.POST("/credits/purchase", h.Purchase)

			w := doJSON(t, router, http.MethodPost, "/credits/purchase", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if w.Code == http.StatusOK {
				body := decode[dto.CheckoutResponse](t, w)
				assert.Equal(t, "cs_1", body.SessionID)
				assert.NotEmpty(t, body.URL)
			}
		})
	}
}

func TestCreditHandler_ListPackages(t *testing.T) {
	m, h := setupCreditHandler(t)
	m.purchase.EXPECT().ListPackages().Return(entity.CreditPackages)
	router := newTestRouter()
	router.GET("/credits/packages", h.ListPackages)

	w := doJSON(t, router, http.MethodGet, "/credits/packages", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[dto.PackagesResponse](t, w)
	assert.Len(t, body.Packages, len(entity.CreditPackages))
}

func TestCreditHandler_Webhook(t *testing.T) {
	purchaseEvent := &entity.PaymentEvent{
		ID:         "evt_1",
		Type:       entity.EventCheckoutCompleted,
		Purpose:    entity.PurposeCreditPurchase,
		UserID:     testUserID,
		Credits:    "30",
		PaymentRef: "pi_1",
		SessionID:  "cs_1",
	}

	tests := []struct {
		name           string
		setupMocks     func(m *creditMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "credit applied",
			setupMocks: func(m *creditMocks) {
				m.events.EXPECT().Verify([]byte(`{"id":"evt_1"}`), "t=1,v1=abc").Return(purchaseEvent, nil)
				m.purchase.EXPECT().HandlePaymentEvent(mock.Anything, purchaseEvent).
					Return(&usecase.PaymentOutcome{Handled: true, UserID: testUserID, Credits: 30, Balance: 33}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"received":true}`,
		},
		{
			name: "replayed event is still a success",
			setupMocks: func(m *creditMocks) {
				m.events.EXPECT().Verify(mock.Anything, mock.Anything).Return(purchaseEvent, nil)
				m.purchase.EXPECT().HandlePaymentEvent(mock.Anything, purchaseEvent).
					Return(&usecase.PaymentOutcome{Handled: true, Duplicate: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"received":true,"duplicate":true}`,
		},
		{
			name: "unrelated event acknowledged",
			setupMocks: func(m *creditMocks) {
				other := &entity.PaymentEvent{ID: "evt_2", Type: "payment_intent.created"}
				m.events.EXPECT().Verify(mock.Anything, mock.Anything).Return(other, nil)
				m.purchase.EXPECT().HandlePaymentEvent(mock.Anything, other).
					Return(&usecase.PaymentOutcome{Handled: false}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"received":true}`,
		},
		{
			name: "bad signature",
			setupMocks: func(m *creditMocks) {
				m.events.EXPECT().Verify(mock.Anything, mock.Anything).Return(nil, domainerr.ErrInvalidSignature)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid metadata",
			setupMocks: func(m *creditMocks) {
				m.events.EXPECT().Verify(mock.Anything, mock.Anything).Return(purchaseEvent, nil)
				m.purchase.EXPECT().HandlePaymentEvent(mock.Anything, purchaseEvent).
					Return(nil, domainerr.ErrInvalidPaymentEvent)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "credit failure asks the provider to retry",
			setupMocks: func(m *creditMocks) {
				m.events.EXPECT().Verify(mock.Anything, mock.Anything).Return(purchaseEvent, nil)
				m.purchase.EXPECT().HandlePaymentEvent(mock.Anything, purchaseEvent).
					Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup mocks
			m, h := setupCreditHandler(t)
			tt.setupMocks(m)
			router := newTestRouter()
			router.POST("/credits/webhook", h.Webhook)

			// Execute
			req := httptest.NewRequest(http.MethodPost, "/credits/webhook", strings.NewReader(`{"id":"evt_1"}`))
			req.Header.Set(SignatureHeader, "t=1,v1=abc")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req.WithContext(context.Background()))

			// Assertions
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
