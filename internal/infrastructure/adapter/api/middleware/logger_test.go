package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/petavatar-credits/mocks/port/core"
)

func TestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  string
	}{
		{name: "success", status: http.StatusOK, level: "Info"},
		{name: "client error", status: http.StatusPaymentRequired, level: "Warn"},
		{name: "server error", status: http.StatusServiceUnavailable, level: "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup mocks
			logger := mockcore.NewMockLogger(t)
			logger.On(tt.level, mock.Anything, mock.MatchedBy(func(fields map[string]interface{}) bool {
				return fields["status"] == tt.status && fields["user_id"] == "user_1" && fields["path"] == "/generate-hd"
			})).Return().Once()

			router := gin.New()
			router.Use(Logger(logger))
			router.POST("/generate-hd", func(c *gin.Context) {
				SetIdentity(c, "user_1", "")
				c.Status(tt.status)
			})

			// Execute
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/generate-hd", nil))

			// Assertions
			logger.AssertExpectations(t)
		})
	}
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Success", statusText(http.StatusCreated))
	assert.Equal(t, "Redirect", statusText(http.StatusFound))
}
