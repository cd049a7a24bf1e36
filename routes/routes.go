package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth endpoints (no middleware)
	SetupAuthRoutes(r, db)

	// Public storefront: catalog, content, contact
	SetupStorefrontRoutes(r, db)

	// Cart endpoints (signed-in users or guest sessions)
	SetupCartRoutes(r, db)

	// Orders and checkout
	SetupOrderRoutes(r, db)

	// Stripe payment proxy and webhook
	SetupPaymentRoutes(r, db)

	// Chat assistant stream
	SetupChatRoutes(r, db)

	// Admin back office (API-key protected)
	SetupAdminRoutes(r, db)
}
