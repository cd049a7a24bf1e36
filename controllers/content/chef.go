package contentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// GetChefRecommendations returns active picks, featured first.
func GetChefRecommendations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var recommendations []models.ChefRecommendation
		if err := db.Preload("Dessert").
			Where("active = ?", true).
			Order("is_featured DESC, created_at DESC").
			Find(&recommendations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
			return
		}
		c.JSON(http.StatusOK, recommendations)
	}
}

func CreateChefRecommendation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ChefName           string `json:"chef_name" binding:"required"`
			ChefTitle          string `json:"chef_title"`
			ChefImage          string `json:"chef_image"`
			RecommendationText string `json:"recommendation_text" binding:"required"`
			DessertID          *uint  `json:"dessert_id"`
			IsFeatured         bool   `json:"is_featured"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		recommendation := models.ChefRecommendation{
			ChefName:           input.ChefName,
			ChefTitle:          input.ChefTitle,
			ChefImage:          input.ChefImage,
			RecommendationText: input.RecommendationText,
			DessertID:          input.DessertID,
			IsFeatured:         input.IsFeatured,
			Active:             true,
		}
		if err := db.Create(&recommendation).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recommendation"})
			return
		}

		c.JSON(http.StatusCreated, recommendation)
	}
}

func DeleteChefRecommendation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.ChefRecommendation{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recommendation"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recommendation not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Recommendation deleted"})
	}
}
