package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// apiKeyHeader carries the back office key on /admin requests.
const apiKeyHeader = "X-API-KEY"

// ValidateAPIKey guards the admin surface. The expected key comes from
// ADMIN_API_KEY; when it is unset every request is rejected, the surface is
// never left open.
func ValidateAPIKey(c *gin.Context) {
	expected := os.Getenv("ADMIN_API_KEY")
	provided := strings.TrimSpace(c.GetHeader(apiKeyHeader))
	if expected == "" || provided == "" ||
		subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
