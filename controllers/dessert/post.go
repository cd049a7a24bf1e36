package dessertController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// CreateDessert creates a new dessert with an optional image upload.
func CreateDessert(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		categoryIDStr := c.PostForm("category_id")
		if name == "" || priceStr == "" || categoryIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and category_id are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			return
		}

		slug := c.PostForm("slug")
		if slug == "" {
			slug = Slugify(name)
		}

		prepTime := 0
		if v := c.PostForm("preparation_time"); v != "" {
			if parsed, parseErr := strconv.Atoi(v); parseErr == nil {
				prepTime = parsed
			}
		}

		stock := 0
		if v := c.PostForm("stock"); v != "" {
			if parsed, parseErr := strconv.Atoi(v); parseErr == nil {
				stock = parsed
			}
		}

		dessert := models.Dessert{
			Name:            name,
			Slug:            slug,
			Description:     c.PostForm("description"),
			Price:           price,
			CategoryID:      uint(categoryID),
			Image:           "/placeholder.jpg",
			DietaryInfo:     splitList(c.PostForm("dietary_info")),
			Ingredients:     splitList(c.PostForm("ingredients")),
			Allergens:       splitList(c.PostForm("allergens")),
			PreparationTime: prepTime,
			Featured:        c.PostForm("featured") == "true",
			Seasonal:        c.PostForm("seasonal") == "true",
			BestSeller:      c.PostForm("best_seller") == "true",
			Available:       c.PostForm("available") != "false",
			Stock:           stock,
		}

		// Optional image upload
		if _, uploadErr := c.FormFile("image"); uploadErr == nil {
			imageURL, saveErr := saveUploadedImage(c, "image")
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			dessert.Image = imageURL
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&dessert).Error; err != nil {
				return err
			}
			return refreshCategoryCount(tx, dessert.CategoryID)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dessert"})
			return
		}

		c.JSON(http.StatusCreated, dessert)
	}
}

// Slugify turns a display name into a URL slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

func splitList(s string) models.StringList {
	if s == "" {
		return nil
	}
	var out models.StringList
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func refreshCategoryCount(tx *gorm.DB, categoryID uint) error {
	var count int64
	if err := tx.Model(&models.Dessert{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&models.Category{}).Where("id = ?", categoryID).
		Update("product_count", count).Error
}

func uploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveUploadedImage stores an uploaded image under the desserts upload folder
// and returns its public URL path.
func saveUploadedImage(c *gin.Context, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(uploadsDir(), "desserts")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(fileHeader.Filename)
	base := strings.TrimSuffix(fileHeader.Filename, ext)
	base = strings.ReplaceAll(base, " ", "_")

	fileName := fmt.Sprintf("%d_%s%s", time.Now().Unix(), base, ext)
	savePath := filepath.Join(dir, fileName)

	if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
		return "", err
	}
	return "/uploads/desserts/" + fileName, nil
}
