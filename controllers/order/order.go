package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sweetdessert/dessert-shop-api/cart"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`

	OrderType       string            `json:"order_type" binding:"required"` // "delivery" or "takeaway"
	DeliveryAddress map[string]string `json:"delivery_address"`

	PickupTime          string `json:"pickup_time"`
	SpecialInstructions string `json:"special_instructions"`

	PaymentMethod   string `json:"payment_method"` // "online" or "store"
	PaymentIntentID string `json:"payment_intent_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusReady):
		return models.OrderStatusReady, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusPickedUp):
		return models.OrderStatusPickedUp, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusSucceeded):
		return models.PaymentStatusSucceeded, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func mapOrderType(orderType string) (models.OrderType, error) {
	switch strings.ToLower(orderType) {
	case string(models.OrderTypeDelivery):
		return models.OrderTypeDelivery, nil
	case string(models.OrderTypeTakeaway):
		return models.OrderTypeTakeaway, nil
	default:
		return "", errors.New("invalid order type")
	}
}

// GenerateOrderNumber builds the customer-facing reference, e.g. DL-20260831-004.
// The sequence restarts daily per order type.
func GenerateOrderNumber(tx *gorm.DB, orderType models.OrderType, now time.Time) (string, error) {
	prefix := "DL"
	if orderType == models.OrderTypeTakeaway {
		prefix = "TA"
	}
	datePart := now.Format("20060102")

	var count int64
	if err := tx.Model(&models.Order{}).
		Where("order_number LIKE ?", prefix+"-"+datePart+"-%").
		Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%s-%03d", prefix, datePart, count+1), nil
}

func ownerID(c *gin.Context) (string, string, bool) {
	if userIDVal, exists := c.Get("user_id"); exists {
		userID := userIDVal.(string)
		return userID, userID, true
	}
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return "guest:" + sessionID, "", true
	}
	return "", "", false
}

// -------- Core Logic --------

// PlaceOrder checks out the owner's cart into a persisted order. Totals are
// recomputed from the stored cart lines, never trusted from the client.
func PlaceOrder(db *gorm.DB, owner, userID string, req PlaceOrderRequest) (*models.Order, error) {
	orderType, err := mapOrderType(req.OrderType)
	if err != nil {
		return nil, err
	}
	if orderType == models.OrderTypeDelivery && len(req.DeliveryAddress) == 0 {
		return nil, errors.New("delivery_address is required for delivery orders")
	}
	if orderType == models.OrderTypeTakeaway && req.PickupTime == "" {
		return nil, errors.New("pickup_time is required for takeaway orders")
	}

	paymentMethod := models.PaymentMethodOnline
	if strings.ToLower(req.PaymentMethod) == string(models.PaymentMethodStore) {
		paymentMethod = models.PaymentMethodStore
	}
	if paymentMethod == models.PaymentMethodStore && orderType == models.OrderTypeDelivery {
		return nil, errors.New("pay at store is only available for takeaway orders")
	}

	engine := cart.NewEngine(cart.NewGormStore(db, owner))
	lines := engine.Items()
	if len(lines) == 0 {
		return nil, errors.New("cart is empty")
	}

	var order models.Order

	err = db.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem
		subtotal := 0.0

		for _, line := range lines {
			var dessert models.Dessert
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&dessert, "id = ?", line.ProductID).Error; err != nil {
				return errors.New("dessert no longer exists: " + line.Name)
			}
			if !dessert.Available {
				return errors.New("dessert is not available: " + dessert.Name)
			}
			if dessert.Stock < line.Quantity {
				return errors.New("insufficient stock for: " + dessert.Name)
			}

			dessert.Stock -= line.Quantity
			if err := tx.Save(&dessert).Error; err != nil {
				return err
			}

			// Charge the current catalog price, not the price captured
			// when the line was added.
			lineTotal := dessert.Price * float64(line.Quantity)
			subtotal += lineTotal

			orderItems = append(orderItems, models.OrderItem{
				ProductID:      line.ProductID,
				ProductName:    dessert.Name,
				ProductImage:   dessert.Image,
				UnitPrice:      dessert.Price,
				Quantity:       line.Quantity,
				Customizations: models.StringMap(line.Customizations),
				TotalPrice:     lineTotal,
			})
		}

		deliveryFee := 0.0
		if orderType == models.OrderTypeDelivery {
			deliveryFee = cart.DeliveryFee(subtotal)
		}
		tax := cart.Tax(subtotal)
		total := subtotal + deliveryFee + tax

		now := time.Now()
		orderNumber, err := GenerateOrderNumber(tx, orderType, now)
		if err != nil {
			return err
		}

		paymentStatus := models.PaymentStatusPending
		if paymentMethod == models.PaymentMethodOnline && req.PaymentIntentID != "" {
			paymentStatus = models.PaymentStatusSucceeded
		}

		order = models.Order{
			ID:                    uuid.NewString(),
			OrderNumber:           orderNumber,
			CustomerName:          req.CustomerName,
			CustomerEmail:         req.CustomerEmail,
			CustomerPhone:         req.CustomerPhone,
			UserID:                userID,
			OrderType:             orderType,
			DeliveryAddress:       models.StringMap(req.DeliveryAddress),
			PickupTime:            req.PickupTime,
			SpecialInstructions:   req.SpecialInstructions,
			Subtotal:              subtotal,
			DeliveryFee:           deliveryFee,
			Tax:                   tax,
			Total:                 total,
			PaymentMethod:         paymentMethod,
			StripePaymentIntentID: req.PaymentIntentID,
			PaymentStatus:         paymentStatus,
			Status:                models.OrderStatusPending,
			Items:                 orderItems,
			CreatedAt:             now,
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	engine.Clear()
	broadcastNewOrder(order)

	return &order, nil
}

// -------- Handlers --------

func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, userID, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header or authentication is required"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, owner, userID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if orderType := c.Query("order_type"); orderType != "" {
			query = query.Where("order_type = ?", orderType)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal.(string)).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler resolves either the UUID or the order number.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Where("id = ? OR order_number = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("payment_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
