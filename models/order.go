package models

import "time"

type OrderStatus string
type OrderType string
type PaymentMethod string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Being prepared in the kitchen
	OrderStatusConfirmed  OrderStatus = "confirmed"  // Confirmed by the shop
	OrderStatusReady      OrderStatus = "ready"      // Ready for pickup (takeaway)
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the order
	OrderStatusPickedUp   OrderStatus = "picked_up"  // Takeaway order collected
	OrderStatusCancelled  OrderStatus = "cancelled"

	OrderTypeDelivery OrderType = "delivery"
	OrderTypeTakeaway OrderType = "takeaway"

	PaymentMethodOnline PaymentMethod = "online" // Paid via Stripe
	PaymentMethodStore  PaymentMethod = "store"  // Pay at store on pickup

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Order struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	OrderNumber string `gorm:"uniqueIndex" json:"order_number"`

	CustomerName  string `gorm:"not null" json:"customer_name"`
	CustomerEmail string `gorm:"not null" json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	UserID        string `gorm:"index" json:"user_id,omitempty"`

	OrderType       OrderType `gorm:"type:VARCHAR(20);default:'delivery'" json:"order_type"`
	DeliveryAddress StringMap `gorm:"type:text" json:"delivery_address,omitempty"`

	// Takeaway orders only.
	PickupTime          string `json:"pickup_time,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`

	PaymentMethod         PaymentMethod `gorm:"type:VARCHAR(20);default:'online'" json:"payment_method"`
	StripePaymentIntentID string        `json:"stripe_payment_intent_id,omitempty"`
	PaymentStatus         PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`

	Status OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrderID        string    `gorm:"index;type:uuid" json:"-"`
	ProductID      uint      `json:"product_id"`
	ProductName    string    `json:"product_name"`
	ProductImage   string    `json:"product_image"`
	UnitPrice      float64   `json:"unit_price"`
	Quantity       int       `json:"quantity"`
	Customizations StringMap `gorm:"type:text" json:"customizations"`
	TotalPrice     float64   `json:"total_price"`
}

func (o Order) IsTakeaway() bool {
	return o.OrderType == OrderTypeTakeaway
}

func (o Order) IsPaidOnline() bool {
	return o.PaymentMethod == PaymentMethodOnline && o.PaymentStatus == PaymentStatusSucceeded
}
