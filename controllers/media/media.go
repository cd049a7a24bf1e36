package mediaController

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

var unsafeChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// HandleMediaUpload saves an uploaded file under uploadDir, records it and
// returns the public URL. kind comes from the form ("hero-video", "banner",
// "image") and defaults to "image".
func HandleMediaUpload(db *gorm.DB, uploadDir string, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		kind := c.PostForm("kind")
		if kind == "" {
			kind = "image"
		}

		cleanName := unsafeChars.ReplaceAllString(file.Filename, "_")
		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), cleanName)

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to create upload folder: %v", err),
			})
			return
		}

		savePath := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to save file: %v", err),
			})
			return
		}

		fileURL := fmt.Sprintf("%s/uploads/media/%s", publicBaseURL, filename)

		asset, err := models.SaveMediaAsset(db, kind, filename, fileURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record media asset"})
			return
		}

		log.Printf("📁 Media uploaded: %s -> %s", file.Filename, fileURL)

		c.JSON(http.StatusOK, gin.H{
			"asset":    asset,
			"file_url": fileURL,
			"message":  "File uploaded successfully",
		})
	}
}

// GetMediaAssets lists stored assets, optionally filtered with ?kind=.
func GetMediaAssetsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		assets, err := models.GetMediaAssets(db, c.Query("kind"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media assets"})
			return
		}
		c.JSON(http.StatusOK, assets)
	}
}

// GetHeroVideo returns the most recent hero video, the storefront banner slot.
func GetHeroVideo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		assets, err := models.GetMediaAssets(db, "hero-video")
		if err != nil || len(assets) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No hero video configured"})
			return
		}
		c.JSON(http.StatusOK, assets[0])
	}
}

func DeleteMediaAssetHandler(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}

		var asset models.MediaAsset
		if err := db.First(&asset, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Media asset not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query media asset"})
			return
		}

		filePath := filepath.Join(uploadDir, asset.FileName)
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file from disk"})
			return
		}

		if err := db.Delete(&asset).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media record"})
			return
		}

		log.Printf("🗑️ Media asset deleted: %s", asset.FileName)
		c.JSON(http.StatusOK, gin.H{"message": "Media asset deleted successfully"})
	}
}
