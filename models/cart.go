package models

import "time"

// Cart is one cart per owner. OwnerID is a user ID for signed-in customers
// or a guest session ID for anonymous ones; guest carts are merged into the
// user cart at login.
type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	OwnerID   string     `gorm:"uniqueIndex" json:"owner_id"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one line of a cart. LineID is the line identity exposed to
// clients; the same dessert with different customizations is a separate line.
type CartItem struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	CartID         uint      `gorm:"index" json:"-"`
	LineID         string    `gorm:"index;not null" json:"cart_id"`
	ProductID      uint      `json:"product_id"`
	Name           string    `json:"name"`
	Image          string    `json:"image"`
	UnitPrice      float64   `json:"unit_price"`
	Quantity       int       `json:"quantity"`
	Customizations StringMap `gorm:"type:text" json:"customizations"`
	AddedAt        time.Time `json:"added_at"`
}
