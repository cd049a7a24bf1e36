package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/sweetdessert/dessert-shop-api/controllers/order"
	"github.com/sweetdessert/dessert-shop-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Checkout: users and guests both place orders
		orders.POST("/place", middleware.OptionalToken, orderControllers.PlaceOrderHandler(db))

		// Order lookup by UUID or order number (confirmation page)
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Signed-in customer's order history
		orders.GET("/mine", middleware.ValidateToken, orderControllers.GetUserOrdersHandler(db))

		// Admin feed
		orders.GET("", middleware.ValidateAPIKey, orderControllers.GetAllOrdersHandler(db))
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
		orders.PUT("/:orderID/status", middleware.ValidateAPIKey, orderControllers.UpdateOrderStatusHandler(db))
		orders.PUT("/:orderID/payment-status", middleware.ValidateAPIKey, orderControllers.UpdatePaymentStatusHandler(db))
		orders.DELETE("/:orderID", middleware.ValidateAPIKey, orderControllers.DeleteOrderHandler(db))
	}
}
