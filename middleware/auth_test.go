package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, secret, userID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func identityRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func getWhoami(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateTokenSetsClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter(ValidateToken)

	token := mintToken(t, "test-secret", "user-42", "user")
	w := getWhoami(r, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestValidateTokenRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter(ValidateToken)

	w := getWhoami(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter(ValidateToken)

	token := mintToken(t, "other-secret", "user-42", "user")
	w := getWhoami(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter(ValidateToken)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-42",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := getWhoami(r, "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalTokenAllowsAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter(OptionalToken)

	w := getWhoami(r, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Garbage tokens do not block either, they just leave no identity.
	w = getWhoami(r, "Bearer not.a.token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminBlocksNonAdmins(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter(RequireAdmin)

	w := getWhoami(r, "Bearer "+mintToken(t, "test-secret", "user-1", "user"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = getWhoami(r, "Bearer "+mintToken(t, "test-secret", "admin-1", "admin"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = getWhoami(r, "Bearer "+mintToken(t, "test-secret", "admin-2", "superadmin"))
	assert.Equal(t, http.StatusOK, w.Code)
}
