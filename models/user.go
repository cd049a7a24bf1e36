package models

import "time"

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	Provider     string `json:"provider"` // "password" or "google"
	Address      Address `gorm:"embedded" json:"address"`
	Cart         *Cart   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders       []Order `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Address model embedded in User
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

// GuestSession backs anonymous carts and chat sessions. Expired sessions are
// swept opportunistically when a new one is created.
type GuestSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
