package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/sweetdessert/dessert-shop-api/controllers/payment"
	"github.com/sweetdessert/dessert-shop-api/middleware"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.POST("/create-payment-intent", paymentControllers.CreatePaymentIntentHandler())

		// Webhook: middleware verifies the Stripe signature first
		api.POST("/stripe-webhook",
			middleware.StripeWebhookAuth(),
			paymentControllers.StripeWebhookHandler(db),
		)
	}
}
