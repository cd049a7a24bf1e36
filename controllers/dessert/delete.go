package dessertController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// DeleteDessert soft-deletes a dessert and refreshes its category count.
func DeleteDessert(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var dessert models.Dessert
		if err := db.First(&dessert, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Dessert not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dessert"})
			return
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&dessert).Error; err != nil {
				return err
			}
			return refreshCategoryCount(tx, dessert.CategoryID)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dessert"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Dessert deleted successfully"})
	}
}
