package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	adminController "github.com/sweetdessert/dessert-shop-api/controllers/admin"
	contentControllers "github.com/sweetdessert/dessert-shop-api/controllers/content"
	dessertController "github.com/sweetdessert/dessert-shop-api/controllers/dessert"
	mediaController "github.com/sweetdessert/dessert-shop-api/controllers/media"
	userControllers "github.com/sweetdessert/dessert-shop-api/controllers/user"
	"github.com/sweetdessert/dessert-shop-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/dashboard", adminController.DashboardStats(db))
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(db))
		adminGroup.GET("/orders/export-excel", adminController.ExportOrdersToExcel(db))

		dessertAdmin := adminGroup.Group("/desserts")
		{
			dessertAdmin.POST("", dessertController.CreateDessert(db))
			dessertAdmin.PUT("/:id", dessertController.UpdateDessert(db))
			dessertAdmin.DELETE("/:id", dessertController.DeleteDessert(db))
			dessertAdmin.POST("/import-excel", dessertController.ImportDessertsFromExcel(db))
			dessertAdmin.GET("/export-excel", dessertController.ExportDessertsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", dessertController.CreateCategory(db))
			categoryAdmin.PUT("/:id", dessertController.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", dessertController.DeleteCategory(db))
		}

		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(db))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(db))
			adminMgmt.POST("/reject", adminController.RejectAdmin(db))
		}

		contentAdmin := adminGroup.Group("/content")
		{
			contentAdmin.GET("/testimonials", contentControllers.GetAllTestimonials(db))
			contentAdmin.PUT("/testimonials/:id/approve", contentControllers.ApproveTestimonial(db))
			contentAdmin.DELETE("/testimonials/:id", contentControllers.DeleteTestimonial(db))

			contentAdmin.POST("/chef-recommendations", contentControllers.CreateChefRecommendation(db))
			contentAdmin.DELETE("/chef-recommendations/:id", contentControllers.DeleteChefRecommendation(db))

			contentAdmin.GET("/contacts", contentControllers.GetContactSubmissions(db))
			contentAdmin.PUT("/contacts/:id/responded", contentControllers.MarkContactResponded(db))

			contentAdmin.POST("/faq-categories", contentControllers.CreateFAQCategory(db))
			contentAdmin.POST("/faq-items", contentControllers.CreateFAQItem(db))
			contentAdmin.DELETE("/faq-items/:id", contentControllers.DeleteFAQItem(db))
		}

		mediaDir := filepath.Join(UploadsDir(), "media")
		mediaAdmin := adminGroup.Group("/media")
		{
			mediaAdmin.POST("/upload", mediaController.HandleMediaUpload(db, mediaDir, PublicBaseURL()))
			mediaAdmin.DELETE("/:id", mediaController.DeleteMediaAssetHandler(db, mediaDir))
		}
	}
}
