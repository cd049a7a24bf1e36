package models

import "time"

type Category struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"unique;not null" json:"name"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ProductCount int       `json:"product_count"`
	DisplayOrder int       `gorm:"default:0" json:"order"`
	Desserts     []Dessert `gorm:"foreignKey:CategoryID" json:"desserts,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
