package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/external"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/middleware"
)

// maxWebhookBody bounds the provider payload we are willing to buffer
const maxWebhookBody = 64 << 10

// SignatureHeader carries the payment provider's webhook signature
const SignatureHeader = "Stripe-Signature"

// CreditHandler handles balance, purchase and payment webhook requests
type CreditHandler struct {
	ledger   usecase.LedgerUseCase
	purchase usecase.PurchaseUseCase
	events   external.VerifiedEventSource
	logger   coreport.Logger
}

// NewCreditHandler creates a new credit handler instance
func NewCreditHandler(
	ledger usecase.LedgerUseCase,
	purchase usecase.PurchaseUseCase,
	events external.VerifiedEventSource,
	logger coreport.Logger,
) *CreditHandler {
	return &CreditHandler{
		ledger:   ledger,
		purchase: purchase,
		events:   events,
		logger:   logger,
	}
}

// GetCredits handles GET /credits[?transactions=true&limit=N]
func (h *CreditHandler) GetCredits(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()

	balance, err := h.ledger.GetBalance(ctx, userID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch credits")
		return
	}

	response := dto.CreditsResponse{Credits: balance}

	if include, _ := strconv.ParseBool(c.Query("transactions")); include {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
				respondBadRequest(c, "limit must be a non-negative integer")
				return
			}
		}

		transactions, err := h.ledger.ListTransactions(ctx, userID, limit)
		if err != nil {
			respondError(c, h.logger, err, "Failed to fetch credits")
			return
		}
		response.Transactions = dto.FromTransactions(transactions)
	}

	c.JSON(http.StatusOK, response)
}

// ListPackages handles GET /credits/packages
func (h *CreditHandler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromPackages(h.purchase.ListPackages()))
}

// Purchase handles POST /credits/purchase
func (h *CreditHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	session, err := h.purchase.CreateCreditCheckout(c.Request.Context(), middleware.GetUserID(c), req.Credits)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create checkout session")
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{SessionID: session.ID, URL: session.URL})
}

// Webhook handles POST /credits/webhook. A 5xx makes the provider retry the delivery,
// so it is only returned when the credit could not be applied.
func (h *CreditHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		respondBadRequest(c, "Failed to read request body")
		return
	}

	event, err := h.events.Verify(payload, c.GetHeader(SignatureHeader))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:     "Invalid signature",
			ErrorCode: domainerr.ErrorCode(err),
		})
		return
	}

	outcome, err := h.purchase.HandlePaymentEvent(c.Request.Context(), event)
	switch {
	case errors.Is(err, domainerr.ErrInvalidPaymentEvent):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:     "Invalid metadata",
			ErrorCode: domainerr.ErrorCode(err),
		})
		return
	case err != nil:
		h.logger.Error("Webhook credit application failed", map[string]any{
			"event_id":   event.ID,
			"session_id": event.SessionID,
			"request_id": middleware.GetRequestID(c),
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:     "Failed to add credits",
			ErrorCode: domainerr.ErrorCode(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{Received: true, Duplicate: outcome.Duplicate})
}
