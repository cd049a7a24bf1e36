package routes

import (
	"github.com/gin-gonic/gin"
	chatControllers "github.com/sweetdessert/dessert-shop-api/controllers/chat"
	"github.com/sweetdessert/dessert-shop-api/middleware"
	"gorm.io/gorm"
)

func SetupChatRoutes(r *gin.Engine, db *gorm.DB) {
	chat := r.Group("/api/chat")
	chat.Use(middleware.OptionalToken)
	{
		chat.POST("/stream/", chatControllers.ChatStreamHandler(db))
	}
}
