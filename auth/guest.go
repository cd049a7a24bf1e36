package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// POST /auth/guest
func CreateGuestSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "guest_" + generateRandomString(16)

		session := models.GuestSession{
			ID:        sessionID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}

		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest session"})
			return
		}

		// Sweep expired sessions opportunistically.
		db.Where("expires_at < ?", time.Now()).Delete(&models.GuestSession{})

		token, err := issueGuestToken(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": session.ExpiresAt,
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
