package middleware

import (
	"net/http"
	"net/http/httptest"
	"sticker-shop/config"
	"sticker-shop/utils"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/ping", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("user_email")})
	})
	return router
}

func doGuarded(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	router := newGuardedRouter()

	adminToken, err := utils.GenerateToken(1, "admin@example.com", "admin")
	require.NoError(t, err)
	userToken, err := utils.GenerateToken(2, "user@example.com", "user")
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGuarded(t, router, "").Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGuarded(t, router, "Basic "+adminToken).Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGuarded(t, router, "Bearer not-a-token").Code)
	})

	t.Run("non-admin role", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, doGuarded(t, router, "Bearer "+userToken).Code)
	})

	t.Run("admin passes through", func(t *testing.T) {
		rec := doGuarded(t, router, "Bearer "+adminToken)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "admin@example.com")
	})
}
