package dessertController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// UpdateDessert patches an existing dessert; only supplied form fields change.
func UpdateDessert(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}

		var dessert models.Dessert
		if err := db.First(&dessert, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Dessert not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dessert"})
			return
		}

		oldCategoryID := dessert.CategoryID

		if v := c.PostForm("name"); v != "" {
			dessert.Name = v
		}
		if v := c.PostForm("slug"); v != "" {
			dessert.Slug = v
		}
		if v := c.PostForm("description"); v != "" {
			dessert.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			dessert.Price = price
		}
		if v := c.PostForm("category_id"); v != "" {
			categoryID, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			dessert.CategoryID = uint(categoryID)
		}
		if v := c.PostForm("preparation_time"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				dessert.PreparationTime = parsed
			}
		}
		if v := c.PostForm("stock"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				dessert.Stock = parsed
			}
		}
		if v := c.PostForm("dietary_info"); v != "" {
			dessert.DietaryInfo = splitList(v)
		}
		if v := c.PostForm("ingredients"); v != "" {
			dessert.Ingredients = splitList(v)
		}
		if v := c.PostForm("allergens"); v != "" {
			dessert.Allergens = splitList(v)
		}
		if v := c.PostForm("featured"); v != "" {
			dessert.Featured = v == "true"
		}
		if v := c.PostForm("seasonal"); v != "" {
			dessert.Seasonal = v == "true"
		}
		if v := c.PostForm("best_seller"); v != "" {
			dessert.BestSeller = v == "true"
		}
		if v := c.PostForm("available"); v != "" {
			dessert.Available = v == "true"
		}

		if _, uploadErr := c.FormFile("image"); uploadErr == nil {
			imageURL, saveErr := saveUploadedImage(c, "image")
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			dessert.Image = imageURL
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&dessert).Error; err != nil {
				return err
			}
			if err := refreshCategoryCount(tx, dessert.CategoryID); err != nil {
				return err
			}
			if oldCategoryID != dessert.CategoryID {
				return refreshCategoryCount(tx, oldCategoryID)
			}
			return nil
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dessert"})
			return
		}

		c.JSON(http.StatusOK, dessert)
	}
}
