package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/middleware"
)

// GenerationHandler handles preview generation, HD unlocks and generation records
type GenerationHandler struct {
	generation usecase.GenerationUseCase
	logger     coreport.Logger
}

// NewGenerationHandler creates a new generation handler instance
func NewGenerationHandler(generation usecase.GenerationUseCase, logger coreport.Logger) *GenerationHandler {
	return &GenerationHandler{
		generation: generation,
		logger:     logger,
	}
}

// Generate handles POST /generate
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.generation.GeneratePreviews(c.Request.Context(), usecase.PreviewRequest{
		UserID:    middleware.GetUserID(c),
		UserEmail: middleware.GetUserEmail(c),
		Breed:     req.Breed,
		Style:     req.Style,
	})
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate images")
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{
		Success:      true,
		GenerationID: result.GenerationID,
		Images:       result.Images,
		Breed:        result.Breed,
		Style:        string(result.Style),
	})
}

// GenerateHD handles POST /generate-hd
func (h *GenerationHandler) GenerateHD(c *gin.Context) {
	var req dto.GenerateHDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.generation.UnlockHD(c.Request.Context(), usecase.HDRequest{
		UserID:       middleware.GetUserID(c),
		GenerationID: req.GenerationID,
		Style:        req.Style,
		Images:       req.Images,
	})
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate HD images")
		return
	}

	c.JSON(http.StatusOK, dto.GenerateHDResponse{
		Success:          true,
		Paid:             true,
		Images:           result.Images,
		CreditsUsed:      result.CreditsUsed,
		RemainingCredits: result.RemainingBalance,
	})
}

// ListGenerations handles GET /generations
func (h *GenerationHandler) ListGenerations(c *gin.Context) {
	records, err := h.generation.ListRecords(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, h.logger, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, dto.FromGenerations(records))
}

// CreateGeneration handles POST /generations
func (h *GenerationHandler) CreateGeneration(c *gin.Context) {
	var req dto.CreateGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing required fields: "+err.Error())
		return
	}

	email := req.UserEmail
	if email == "" {
		email = middleware.GetUserEmail(c)
	}

	record, err := h.generation.CreateRecord(c.Request.Context(), usecase.CreateGenerationRequest{
		UserID:      middleware.GetUserID(c),
		UserEmail:   email,
		Breed:       req.Breed,
		Style:       req.Style,
		PreviewURLs: req.PreviewURLs,
		HDURLs:      req.HDURLs,
		Paid:        req.Paid,
		PaymentID:   req.PaymentID,
		AmountCents: req.Amount,
	})
	if err != nil {
		respondError(c, h.logger, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, dto.FromGeneration(record))
}
