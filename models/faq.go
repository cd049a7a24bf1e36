package models

import "time"

type FAQCategory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	DisplayOrder int       `gorm:"default:0" json:"order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	Items        []FAQItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type FAQItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryID   uint      `gorm:"index" json:"category_id"`
	Question     string    `gorm:"not null" json:"question"`
	Answer       string    `gorm:"not null" json:"answer"`
	DisplayOrder int       `gorm:"default:0" json:"order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
