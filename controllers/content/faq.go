package contentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// GetFAQs returns active categories with their active items for the help page.
func GetFAQs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.FAQCategory
		if err := db.
			Preload("Items", "is_active = ?", true).
			Where("is_active = ?", true).
			Order("display_order asc").
			Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQs"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func CreateFAQCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name         string `json:"name" binding:"required"`
			Description  string `json:"description"`
			Icon         string `json:"icon"`
			Color        string `json:"color"`
			DisplayOrder int    `json:"order"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		category := models.FAQCategory{
			Name:         input.Name,
			Description:  input.Description,
			Icon:         input.Icon,
			Color:        input.Color,
			DisplayOrder: input.DisplayOrder,
			IsActive:     true,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create FAQ category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func CreateFAQItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CategoryID   uint   `json:"category_id" binding:"required"`
			Question     string `json:"question" binding:"required"`
			Answer       string `json:"answer" binding:"required"`
			DisplayOrder int    `json:"order"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var category models.FAQCategory
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "FAQ category does not exist"})
			return
		}

		item := models.FAQItem{
			CategoryID:   input.CategoryID,
			Question:     input.Question,
			Answer:       input.Answer,
			DisplayOrder: input.DisplayOrder,
			IsActive:     true,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create FAQ item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func DeleteFAQItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.FAQItem{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete FAQ item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "FAQ item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "FAQ item deleted"})
	}
}
