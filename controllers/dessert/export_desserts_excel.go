package dessertController

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

func ExportDessertsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var desserts []models.Dessert
		if err := db.Preload("Category").Find(&desserts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch desserts"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Desserts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "CategoryID", "Stock",
			"PreparationTime", "Image", "DietaryInfo", "Ingredients",
			"Allergens", "Featured", "Available", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, d := range desserts {
			row := sheet.AddRow()

			row.AddCell().SetValue(d.ID)
			row.AddCell().SetValue(d.Name)
			row.AddCell().SetValue(d.Description)
			row.AddCell().SetValue(d.Price)
			row.AddCell().SetValue(d.CategoryID)
			row.AddCell().SetValue(d.Stock)
			row.AddCell().SetValue(d.PreparationTime)
			row.AddCell().SetValue(d.Image)
			row.AddCell().SetValue(strings.Join(d.DietaryInfo, ","))
			row.AddCell().SetValue(strings.Join(d.Ingredients, ","))
			row.AddCell().SetValue(strings.Join(d.Allergens, ","))
			row.AddCell().SetValue(d.Featured)
			row.AddCell().SetValue(d.Available)
			row.AddCell().SetValue(d.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(d.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=desserts.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
