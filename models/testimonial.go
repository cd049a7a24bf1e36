package models

import "time"

type Testimonial struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Avatar    string `json:"avatar"`
	Rating    int    `gorm:"not null" json:"rating"` // 1..5
	Text      string `gorm:"not null" json:"text"`
	DessertID *uint  `gorm:"index" json:"dessert_id,omitempty"`
	Approved  bool   `gorm:"default:false" json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

type ChefRecommendation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ChefName  string `gorm:"not null" json:"chef_name"`
	ChefTitle string `json:"chef_title"`
	ChefImage string `json:"chef_image"`

	RecommendationText string   `gorm:"not null" json:"recommendation_text"`
	DessertID          *uint    `gorm:"index" json:"dessert_id,omitempty"`
	Dessert            *Dessert `gorm:"foreignKey:DessertID" json:"dessert,omitempty"`

	IsFeatured bool      `gorm:"default:false" json:"is_featured"`
	Active     bool      `gorm:"default:true" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}
