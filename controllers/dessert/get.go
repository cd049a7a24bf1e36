package dessertController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// GET /desserts/:slug
func GetDessertBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
			return
		}

		var dessert models.Dessert
		if err := db.Preload("Category").Where("slug = ?", slug).First(&dessert).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Dessert not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dessert"})
			return
		}

		c.JSON(http.StatusOK, dessert)
	}
}

// GET /featured-desserts
func GetFeaturedDesserts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var desserts []models.Dessert
		if err := db.Preload("Category").
			Where("featured = ? AND available = ?", true, true).
			Order("best_seller DESC, name ASC").
			Find(&desserts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured desserts"})
			return
		}

		c.JSON(http.StatusOK, desserts)
	}
}
