package adminController

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

type adminEmailRequest struct {
	Email string `json:"email"`
}

func (r adminEmailRequest) normalized() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// ListPendingAdmins returns the accounts Google sign-in registered that are
// still awaiting the super admin's approval, oldest first.
func ListPendingAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Admin
		if err := db.Where("approved = ?", false).Order("created_at ASC").Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending admins"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"pending": pending,
			"count":   len(pending),
		})
	}
}

// ApproveAdmin grants access to a pending account and records who approved
// it and when. Approving an already-approved admin is a no-op.
func ApproveAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.normalized() == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		email := req.normalized()

		var admin models.Admin
		if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		if admin.Approved {
			c.JSON(http.StatusOK, gin.H{"message": "Admin already approved", "admin": admin})
			return
		}

		now := time.Now()
		updates := map[string]interface{}{
			"approved":    true,
			"approved_at": now,
			"approved_by": os.Getenv("SUPER_ADMIN_EMAIL"),
		}
		if err := db.Model(&admin).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve admin"})
			return
		}
		if err := db.First(&admin, admin.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload admin"})
			return
		}

		log.Printf("✅ Admin approved: %s", email)
		c.JSON(http.StatusOK, gin.H{"message": "Admin approved", "admin": admin})
	}
}

// RejectAdmin removes an account from the back office. The super admin is
// env-configured and cannot be rejected.
func RejectAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.normalized() == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		email := req.normalized()

		if super := strings.ToLower(os.Getenv("SUPER_ADMIN_EMAIL")); super != "" && email == super {
			c.JSON(http.StatusForbidden, gin.H{"error": "The super admin cannot be rejected"})
			return
		}

		result := db.Where("email = ?", email).Delete(&models.Admin{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject admin"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}

		log.Printf("🗑️ Admin rejected: %s", email)
		c.JSON(http.StatusOK, gin.H{"message": "Admin rejected"})
	}
}
