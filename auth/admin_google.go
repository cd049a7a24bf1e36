package auth

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// POST /auth/admin/google
// Admins sign in with Google. Unknown emails are registered pending approval
// by the super admin; only approved admins get a token.
func GoogleAdminLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx := c.Request.Context()
		client, err := firebaseClient(ctx)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured"})
			return
		}

		token, err := client.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
		if err != nil {
			log.Printf("❌ ID token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}
		if token.Audience != projectID {
			log.Printf("❌ Token audience mismatch: got %q", token.Audience)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, ok := token.Claims["email"].(string)
		if !ok || email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		firebaseUserID := token.UID

		if email == os.Getenv("SUPER_ADMIN_EMAIL") {
			respondWithAdminToken(c, email, "superadmin", firebaseUserID, name, picture)
			return
		}

		var admin models.Admin
		err = db.Where("email = ?", email).First(&admin).Error
		if err == gorm.ErrRecordNotFound {
			admin = models.Admin{
				Email:    email,
				Name:     name,
				Picture:  picture,
				Approved: false,
			}
			if err := db.Create(&admin).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
				return
			}
			log.Printf("📝 New admin registered: %s (pending approval)", email)
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := db.Model(&admin).Updates(models.Admin{Name: name, Picture: picture}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin info"})
			return
		}
		if err := db.First(&admin, admin.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if !admin.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		}

		respondWithAdminToken(c, email, "admin", firebaseUserID, name, picture)
	}
}

func respondWithAdminToken(c *gin.Context, email, role, userID, name, picture string) {
	c.JSON(http.StatusOK, gin.H{
		"token":   issueJWT(email, role, userID, name, picture),
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
	})
}
