package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/middleware"
)

// PaymentHandler handles the one-off HD unlock checkout
type PaymentHandler struct {
	purchase usecase.PurchaseUseCase
	logger   coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(purchase usecase.PurchaseUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		purchase: purchase,
		logger:   logger,
	}
}

// Checkout handles POST /checkout
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req dto.HDCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	session, err := h.purchase.CreateHDCheckout(c.Request.Context(), middleware.GetUserID(c), req.Images, req.GenerationID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create checkout session")
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{SessionID: session.ID, URL: session.URL})
}

// VerifyPayment handles POST /verify-payment
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	verified, err := h.purchase.VerifyPayment(c.Request.Context(), middleware.GetUserID(c), req.SessionID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to verify payment")
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		Success: true,
		Paid:    verified.Paid,
		Images:  verified.Images,
		Amount:  verified.AmountCents,
	})
}
