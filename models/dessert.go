package models

import (
	"time"

	"gorm.io/gorm"
)

type Dessert struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Image       string    `gorm:"not null" json:"image"`

	Rating       float64 `gorm:"default:0" json:"rating"`
	ReviewsCount int     `gorm:"default:0" json:"reviews_count"`

	DietaryInfo StringList `gorm:"type:text" json:"dietary_info"`
	Ingredients StringList `gorm:"type:text" json:"ingredients"`
	Allergens   StringList `gorm:"type:text" json:"allergens"`

	// PreparationTime is in minutes.
	PreparationTime int  `json:"preparation_time"`
	Featured        bool `gorm:"default:false" json:"featured"`
	Seasonal        bool `gorm:"default:false" json:"seasonal"`
	BestSeller      bool `gorm:"default:false" json:"best_seller"`
	Available       bool `gorm:"default:true" json:"available"`
	Stock           int  `json:"stock"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
