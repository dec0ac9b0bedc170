package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/logger"
)

type stubPinger struct {
	latency time.Duration
	err     error
}

func (p stubPinger) Ping(context.Context) (time.Duration, error) {
	return p.latency, p.err
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		pinger         stubPinger
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "database up",
			pinger:         stubPinger{latency: 3 * time.Millisecond},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok","database":"up","db_latency":"3ms"}`,
		},
		{
			name:           "database down",
			pinger:         stubPinger{err: errors.New("dial tcp: connection refused")},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"unavailable","database":"down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthHandler(tt.pinger, logger.NewNoopLogger()).Health)

			w := doJSON(t, router, http.MethodGet, "/health", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
