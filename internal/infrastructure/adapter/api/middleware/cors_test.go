package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "listed origin",
			allowed:        []string{"https://petavatar.app/"},
			method:         http.MethodGet,
			origin:         "https://petavatar.app",
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://petavatar.app",
		},
		{
			name:           "unlisted origin gets no headers",
			allowed:        []string{"https://petavatar.app"},
			method:         http.MethodGet,
			origin:         "https://evil.example",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wildcard echoes the origin",
			allowed:        []string{"*"},
			method:         http.MethodGet,
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://localhost:3000",
		},
		{
			name:           "preflight short circuits",
			allowed:        []string{"https://petavatar.app"},
			method:         http.MethodOptions,
			origin:         "https://petavatar.app",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "https://petavatar.app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.allowed))
			router.GET("/credits", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/credits", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
