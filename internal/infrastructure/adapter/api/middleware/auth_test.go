package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainerr "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/petavatar-credits/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		setupMocks     func(verifier *mockcore.MockIdentityVerifier, logger *mockcore.MockLogger)
		expectedStatus int
		expectedUser   string
	}{
		{
			name:   "valid bearer token",
			header: "Bearer good-token",
			setupMocks: func(verifier *mockcore.MockIdentityVerifier, logger *mockcore.MockLogger) {
				verifier.EXPECT().Verify(mock.Anything, "good-token").
					Return(&coreport.Identity{UserID: "user_1", Email: "owner@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUser:   "user_1",
		},
		{
			name:   "scheme is case insensitive",
			header: "bearer good-token",
			setupMocks: func(verifier *mockcore.MockIdentityVerifier, logger *mockcore.MockLogger) {
				verifier.EXPECT().Verify(mock.Anything, "good-token").
					Return(&coreport.Identity{UserID: "user_2"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUser:   "user_2",
		},
		{
			name:           "missing header",
			header:         "",
			setupMocks:     func(verifier *mockcore.MockIdentityVerifier, logger *mockcore.MockLogger) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			header:         "Basic dXNlcjpwYXNz",
			setupMocks:     func(verifier *mockcore.MockIdentityVerifier, logger *mockcore.MockLogger) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setupMocks: func(verifier *mockcore.MockIdentityVerifier, logger *mockcore.MockLogger) {
				verifier.EXPECT().Verify(mock.Anything, "expired").Return(nil, domainerr.ErrUnauthorized)
				logger.On("Debug", "Authentication failed", mock.Anything).Return()
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup mocks
			verifier := mockcore.NewMockIdentityVerifier(t)
			logger := mockcore.NewMockLogger(t)
			tt.setupMocks(verifier, logger)

			var seenUser string
			router := gin.New()
			router.Use(Auth(verifier, logger))
			router.GET("/credits", func(c *gin.Context) {
				seenUser = GetUserID(c)
				c.Status(http.StatusOK)
			})

			// Execute
			req := httptest.NewRequest(http.MethodGet, "/credits", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			// Assertions
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedUser, seenUser)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized","errorCode":4012}`, w.Body.String())
			}
		})
	}
}
