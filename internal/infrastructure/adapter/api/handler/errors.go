package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/middleware"
)

// statusFor maps a domain error to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInsufficientCredits):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerr.ErrRequestInProgress):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrGenerationNotOwned):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrGenerationFailed), errors.Is(err, domainerr.ErrPaymentGateway):
		return http.StatusBadGateway
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	case domainerr.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Server errors are logged with the
// request context, and their message is replaced with fallback.
func respondError(c *gin.Context, logger coreport.Logger, err error, fallback string) {
	var insufficient *domainerr.InsufficientCreditsError
	if errors.As(err, &insufficient) {
		c.JSON(http.StatusPaymentRequired, dto.InsufficientCreditsResponse{
			Error:     "Insufficient credits",
			Code:      dto.CodeInsufficientCredits,
			ErrorCode: domainerr.CodeInsufficientCredits,
			Required:  insufficient.Required,
			Current:   insufficient.Current,
		})
		return
	}

	status := statusFor(err)
	body := dto.ErrorResponse{
		Error:     err.Error(),
		ErrorCode: domainerr.ErrorCode(err),
	}
	if errors.Is(err, domainerr.ErrRequestInProgress) {
		body.Code = dto.CodeRequestInProgress
	}

	if status >= http.StatusInternalServerError {
		fields := map[string]any{
			"path":       c.Request.URL.Path,
			"user_id":    middleware.GetUserID(c),
			"request_id": middleware.GetRequestID(c),
			"error":      err.Error(),
		}
		var loggable interface{ LogFields() map[string]any }
		if errors.As(err, &loggable) {
			for k, v := range loggable.LogFields() {
				fields[k] = v
			}
		}
		logger.Error(fallback, fields)
		body.Error = fallback
	}

	c.JSON(status, body)
}

// respondBadRequest rejects malformed input before any store access
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:     message,
		ErrorCode: domainerr.ErrorCode(domainerr.ErrInvalidRequest),
	})
}
