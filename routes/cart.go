package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/sweetdessert/dessert-shop-api/controllers/cart"
	"github.com/sweetdessert/dessert-shop-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers "/cart/*". The optional token middleware lets the
// same endpoints serve signed-in users and X-Session-ID guests.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.OptionalToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/items", cartControllers.AddItem(db))
		cartGroup.PUT("/items/:line_id", cartControllers.UpdateQuantity(db))
		cartGroup.DELETE("/items/:line_id", cartControllers.RemoveItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
	}
}
