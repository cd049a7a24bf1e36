package contentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

type TestimonialInput struct {
	Name      string `json:"name" binding:"required"`
	Avatar    string `json:"avatar"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Text      string `json:"text" binding:"required"`
	DessertID *uint  `json:"dessert_id"`
}

// GetTestimonials returns only approved entries for the storefront.
func GetTestimonials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var testimonials []models.Testimonial
		if err := db.Where("approved = ?", true).
			Order("created_at DESC").
			Find(&testimonials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

// SubmitTestimonial stores a new testimonial awaiting approval.
func SubmitTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TestimonialInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		testimonial := models.Testimonial{
			Name:      input.Name,
			Avatar:    input.Avatar,
			Rating:    input.Rating,
			Text:      input.Text,
			DessertID: input.DessertID,
		}
		if err := db.Create(&testimonial).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit testimonial"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Thank you! Your review will appear after approval."})
	}
}

// Admin endpoints.

func GetAllTestimonials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var testimonials []models.Testimonial
		if err := db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

func ApproveTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.Testimonial{}).
			Where("id = ?", c.Param("id")).
			Update("approved", true)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve testimonial"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Testimonial approved"})
	}
}

func DeleteTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Testimonial{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
	}
}
