package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/cart"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// POST /auth/google
func GoogleUserLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken   string `json:"idToken"`
			SessionID string `json:"session_id"`
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
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}
		if token.Audience != projectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, _ := token.Claims["email"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		firebaseUserID := token.UID

		var user models.User
		err = db.Where("id = ?", firebaseUserID).First(&user).Error

		switch {
		case err == gorm.ErrRecordNotFound:
			user = models.User{
				ID:       firebaseUserID,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		mergeStatus := "no-guest-cart"
		if req.SessionID != "" {
			merged, err := mergeGuestCartIntoUserCart(db, req.SessionID, user.ID)
			switch {
			case err != nil:
				mergeStatus = "merge-failed"
			case merged:
				mergeStatus = "merged-success"
			default:
				mergeStatus = "guest-cart-empty"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"merge_status": mergeStatus,
			"user":         user,
			"token":        issueJWT(email, "user", firebaseUserID, name, picture),
		})
	}
}

// mergeGuestCartIntoUserCart folds a guest session's cart into the user's
// cart using the engine's merge rules, then drops the guest cart. Returns
// whether anything was merged.
func mergeGuestCartIntoUserCart(db *gorm.DB, sessionID, userID string) (bool, error) {
	guestOwner := "guest:" + sessionID

	guestStore := cart.NewGormStore(db, guestOwner)
	guestLines, err := guestStore.Load()
	if err != nil {
		return false, err
	}
	if len(guestLines) == 0 {
		return false, nil
	}

	userEngine := cart.NewEngine(cart.NewGormStore(db, userID))
	for _, line := range guestLines {
		userEngine.AddItem(cart.AddInput{
			ProductID:      line.ProductID,
			Name:           line.Name,
			Price:          line.UnitPrice,
			Image:          line.Image,
			Quantity:       line.Quantity,
			Customizations: line.Customizations,
		})
	}

	if err := db.Where("owner_id = ?", guestOwner).Delete(&models.Cart{}).Error; err != nil {
		return true, err
	}

	return true, nil
}
