package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/dto"
)

const (
	userIDKey    = "userID"
	userEmailKey = "userEmail"
)

// Auth rejects requests without a valid bearer token and stores the caller identity
func Auth(verifier coreport.IdentityVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			abortUnauthorized(c)
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Authentication failed", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": GetRequestID(c),
				"error":      err.Error(),
			})
			abortUnauthorized(c)
			return
		}

		c.Set(userIDKey, identity.UserID)
		c.Set(userEmailKey, identity.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error:     "Unauthorized",
		ErrorCode: domainerr.ErrorCode(domainerr.ErrUnauthorized),
	})
}

// GetUserID returns the authenticated user id
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// GetUserEmail returns the authenticated user's email, if the token carried one
func GetUserEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}

// SetIdentity stores an identity on the context. Handler tests use it in place of Auth.
func SetIdentity(c *gin.Context, userID, email string) {
	c.Set(userIDKey, userID)
	c.Set(userEmailKey, email)
}
