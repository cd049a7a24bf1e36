package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	contentControllers "github.com/sweetdessert/dessert-shop-api/controllers/content"
	dessertController "github.com/sweetdessert/dessert-shop-api/controllers/dessert"
	mediaController "github.com/sweetdessert/dessert-shop-api/controllers/media"
	paymentControllers "github.com/sweetdessert/dessert-shop-api/controllers/payment"
	"github.com/sweetdessert/dessert-shop-api/middleware"
	"gorm.io/gorm"
)

// SetupStorefrontRoutes registers the public catalog and content endpoints.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/health", paymentControllers.HealthHandler())

		api.GET("/desserts", dessertController.GetDesserts(db))
		api.GET("/desserts/featured", dessertController.GetFeaturedDesserts(db))
		api.GET("/desserts/:slug", dessertController.GetDessertBySlug(db))
		api.GET("/categories", dessertController.GetAllCategories(db))

		api.GET("/testimonials", contentControllers.GetTestimonials(db))
		api.POST("/testimonials", contentControllers.SubmitTestimonial(db))
		api.GET("/chef-recommendations", contentControllers.GetChefRecommendations(db))
		api.GET("/faqs", contentControllers.GetFAQs(db))
		api.POST("/contact", middleware.OptionalToken, contentControllers.SubmitContact(db))

		api.GET("/media", mediaController.GetMediaAssetsHandler(db))
		api.GET("/media/hero-video", mediaController.GetHeroVideo(db))
	}
}

// PublicBaseURL is where uploaded files are served from.
func PublicBaseURL() string {
	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:8080"
}

// UploadsDir is the local directory backing the /uploads static route.
func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}
