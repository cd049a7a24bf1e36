package adminController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// startOfLocalDay is midnight in the shop's timezone, not the UTC day
// boundary Truncate would give.
func startOfLocalDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DashboardStats aggregates the numbers shown on the admin home screen.
func DashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			totalOrders    int64
			pendingOrders  int64
			totalDesserts  int64
			totalUsers     int64
			totalRevenue   float64
			ordersToday    int64
			unansweredMail int64
		)

		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pendingOrders)
		db.Model(&models.Dessert{}).Count(&totalDesserts)
		db.Model(&models.User{}).Count(&totalUsers)
		db.Model(&models.ContactSubmission{}).Where("responded = ?", false).Count(&unansweredMail)

		db.Model(&models.Order{}).
			Where("payment_status = ?", models.PaymentStatusSucceeded).
			Select("COALESCE(SUM(total), 0)").
			Scan(&totalRevenue)

		startOfDay := startOfLocalDay(time.Now())
		db.Model(&models.Order{}).Where("created_at >= ?", startOfDay).Count(&ordersToday)

		c.JSON(http.StatusOK, gin.H{
			"total_orders":        totalOrders,
			"pending_orders":      pendingOrders,
			"orders_today":        ordersToday,
			"total_desserts":      totalDesserts,
			"total_users":         totalUsers,
			"total_revenue":       totalRevenue,
			"unanswered_contacts": unansweredMail,
			"generated_at":        time.Now().UTC().Format(time.RFC3339),
		})
	}
}
