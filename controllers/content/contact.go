package contentControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

type ContactInput struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Subject          string `json:"subject" binding:"required"`
	Message          string `json:"message" binding:"required"`
	OrderType        string `json:"order_type"`
	PreferredContact string `json:"preferred_contact"`
}

func mapContactOrderType(s string) models.ContactOrderType {
	switch strings.ToLower(s) {
	case string(models.ContactCustomCake):
		return models.ContactCustomCake
	case string(models.ContactCatering):
		return models.ContactCatering
	case string(models.ContactCorporate):
		return models.ContactCorporate
	case string(models.ContactWedding):
		return models.ContactWedding
	case string(models.ContactComplaint):
		return models.ContactComplaint
	default:
		return models.ContactGeneral
	}
}

// SubmitContact accepts contact and custom-order enquiries.
func SubmitContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		preferred := models.PreferredContactEmail
		if strings.ToLower(input.PreferredContact) == string(models.PreferredContactPhone) {
			preferred = models.PreferredContactPhone
		}

		userID := ""
		if userIDVal, exists := c.Get("user_id"); exists {
			userID = userIDVal.(string)
		}

		submission := models.ContactSubmission{
			UserID:           userID,
			Name:             input.Name,
			Email:            input.Email,
			Phone:            input.Phone,
			Subject:          input.Subject,
			Message:          input.Message,
			OrderType:        mapContactOrderType(input.OrderType),
			PreferredContact: preferred,
		}
		if err := db.Create(&submission).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Thank you for reaching out! We'll get back to you soon."})
	}
}

func GetContactSubmissions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if responded := c.Query("responded"); responded != "" {
			query = query.Where("responded = ?", responded == "true")
		}

		var submissions []models.ContactSubmission
		if err := query.Find(&submissions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
			return
		}
		c.JSON(http.StatusOK, submissions)
	}
}

// MarkContactResponded records that an enquiry was handled, with optional notes.
func MarkContactResponded(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			AdminNotes string `json:"admin_notes"`
		}
		c.ShouldBindJSON(&input)

		result := db.Model(&models.ContactSubmission{}).
			Where("id = ?", c.Param("id")).
			Updates(map[string]interface{}{
				"responded":   true,
				"admin_notes": input.AdminNotes,
			})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Submission marked as responded"})
	}
}
