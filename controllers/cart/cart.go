package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/cart"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID      uint              `json:"product_id" binding:"required"`
	Quantity       int               `json:"quantity"`
	Customizations map[string]string `json:"customizations"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// ownerID resolves who the cart belongs to: the authenticated user when
// the optional token middleware stored one, a guest session otherwise.
func ownerID(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get("user_id"); exists {
		return userIDVal.(string), true
	}
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return "guest:" + sessionID, true
	}
	return "", false
}

func engineFor(c *gin.Context, db *gorm.DB) (*cart.Engine, bool) {
	owner, ok := ownerID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header or authentication is required"})
		return nil, false
	}
	return cart.NewEngine(cart.NewGormStore(db, owner)), true
}

func cartPayload(engine *cart.Engine) gin.H {
	totals := engine.Totals()
	return gin.H{
		"items":  engine.Items(),
		"totals": totals,
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := engineFor(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartPayload(engine))
	}
}

// POST /cart/items
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := engineFor(c, db)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var dessert models.Dessert
		if err := db.First(&dessert, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate dessert"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Dessert does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}
		if !dessert.Available {
			c.JSON(http.StatusConflict, gin.H{"error": "Dessert is not available"})
			return
		}

		engine.AddItem(cart.AddInput{
			ProductID:      input.ProductID,
			Name:           dessert.Name,
			Price:          dessert.Price,
			Image:          dessert.Image,
			Quantity:       input.Quantity,
			Customizations: input.Customizations,
		})

		c.JSON(http.StatusCreated, cartPayload(engine))
	}
}

// PUT /cart/items/:line_id
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := engineFor(c, db)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		engine.UpdateQuantity(c.Param("line_id"), input.Quantity)
		c.JSON(http.StatusOK, cartPayload(engine))
	}
}

// DELETE /cart/items/:line_id
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := engineFor(c, db)
		if !ok {
			return
		}

		engine.RemoveItem(c.Param("line_id"))
		c.JSON(http.StatusOK, cartPayload(engine))
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine, ok := engineFor(c, db)
		if !ok {
			return
		}

		engine.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
