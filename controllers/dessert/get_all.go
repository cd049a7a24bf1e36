package dessertController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// GET /desserts
// Optional filters: ?category=<slug>&featured=true&search=<term>&available=true
func GetDesserts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Dessert{}).Preload("Category")

		if slug := c.Query("category"); slug != "" {
			var category models.Category
			if err := db.Where("slug = ?", slug).First(&category).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve category"})
				return
			}
			query = query.Where("category_id = ?", category.ID)
		}

		if featured := c.Query("featured"); featured != "" {
			if v, err := strconv.ParseBool(featured); err == nil {
				query = query.Where("featured = ?", v)
			}
		}

		if available := c.Query("available"); available != "" {
			if v, err := strconv.ParseBool(available); err == nil {
				query = query.Where("available = ?", v)
			}
		}

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
		}

		var desserts []models.Dessert
		if err := query.
			Order("featured DESC, best_seller DESC, name ASC").
			Find(&desserts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch desserts"})
			return
		}

		c.JSON(http.StatusOK, desserts)
	}
}
