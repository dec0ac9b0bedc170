package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/tracing"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "caller id propagated", incoming: "req-123", keep: true},
		{name: "generated when absent", incoming: ""},
		{name: "oversized id replaced", incoming: strings.Repeat("x", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromCtx string
			router := gin.New()
			router.Use(RequestID())
			router.GET("/health", func(c *gin.Context) {
				fromGin = GetRequestID(c)
				fromCtx = tracing.RequestID(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(tracing.RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.NotEmpty(t, fromGin)
			assert.Equal(t, fromGin, fromCtx)
			assert.Equal(t, fromGin, w.Header().Get(tracing.RequestIDHeader))
			if tt.keep {
				assert.Equal(t, tt.incoming, fromGin)
			} else {
				assert.NotEqual(t, tt.incoming, fromGin)
			}
		})
	}
}
