package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func apiKeyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", ValidateAPIKey, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func getWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if key != "" {
		req.Header.Set("X-API-KEY", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateAPIKeyAcceptsMatchingKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "shop-key")
	r := apiKeyRouter()

	assert.Equal(t, http.StatusOK, getWithKey(r, "shop-key").Code)
	assert.Equal(t, http.StatusOK, getWithKey(r, "  shop-key  ").Code)
}

func TestValidateAPIKeyRejectsWrongOrMissingKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "shop-key")
	r := apiKeyRouter()

	assert.Equal(t, http.StatusUnauthorized, getWithKey(r, "other-key").Code)
	assert.Equal(t, http.StatusUnauthorized, getWithKey(r, "").Code)
}

func TestValidateAPIKeyRejectsWhenUnconfigured(t *testing.T) {
	// No configured key must never mean an open admin surface.
	t.Setenv("ADMIN_API_KEY", "")
	r := apiKeyRouter()

	assert.Equal(t, http.StatusUnauthorized, getWithKey(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, getWithKey(r, "guess").Code)
}
