package adminController

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// GetAllAdmins lists the back office accounts for the dashboard, approved
// first. ?approved=true|false narrows the list. The super admin lives in
// SUPER_ADMIN_EMAIL, not in the table, so the response names it separately.
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("approved DESC, created_at ASC")
		if approved := c.Query("approved"); approved != "" {
			query = query.Where("approved = ?", approved == "true")
		}

		var admins []models.Admin
		if err := query.Find(&admins).Error; err != nil {
			log.Println("❌ Failed to fetch admins:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}

		pending := 0
		for _, admin := range admins {
			if !admin.Approved {
				pending++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"admins":        admins,
			"pending_count": pending,
			"super_admin":   os.Getenv("SUPER_ADMIN_EMAIL"),
		})
	}
}
