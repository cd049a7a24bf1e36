package dessertController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

func ImportDessertsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0
		touchedCategories := map[uint]bool{}

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if len(row.Cells) < 8 {
				skippedCount++
				continue
			}

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, err1 := strconv.ParseFloat(get(3), 64)
			categoryID, err2 := strconv.Atoi(get(4))
			stock, _ := strconv.Atoi(get(5))
			prepTime, _ := strconv.Atoi(get(6))
			image := get(7)
			dietary := get(8)
			ingredients := get(9)
			allergens := get(10)

			if name == "" || err1 != nil || price < 0 || err2 != nil {
				skippedCount++
				continue
			}

			var category models.Category
			if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
				skippedCount++
				continue
			}

			dessert := models.Dessert{
				Name:            name,
				Slug:            Slugify(name),
				Description:     description,
				Price:           price,
				CategoryID:      uint(categoryID),
				Stock:           stock,
				PreparationTime: prepTime,
				Image:           image,
				DietaryInfo:     splitList(dietary),
				Ingredients:     splitList(ingredients),
				Allergens:       splitList(allergens),
				Available:       true,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Dessert
					if err := db.First(&existing, id).Error; err == nil {
						touchedCategories[existing.CategoryID] = true

						existing.Name = dessert.Name
						existing.Slug = dessert.Slug
						existing.Description = dessert.Description
						existing.Price = dessert.Price
						existing.CategoryID = dessert.CategoryID
						existing.Stock = dessert.Stock
						existing.PreparationTime = dessert.PreparationTime
						existing.Image = dessert.Image
						existing.DietaryInfo = dessert.DietaryInfo
						existing.Ingredients = dessert.Ingredients
						existing.Allergens = dessert.Allergens

						if err := db.Save(&existing).Error; err == nil {
							touchedCategories[existing.CategoryID] = true
							updatedCount++
							continue
						}
						skippedCount++
						continue
					}
				}
			}

			if err := db.Create(&dessert).Error; err == nil {
				touchedCategories[dessert.CategoryID] = true
				createdCount++
			} else {
				skippedCount++
			}
		}

		for categoryID := range touchedCategories {
			if err := refreshCategoryCount(db, categoryID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh category counts"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
