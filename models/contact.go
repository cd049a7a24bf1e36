package models

import "time"

type ContactOrderType string
type PreferredContact string

const (
	ContactGeneral    ContactOrderType = "general"
	ContactCustomCake ContactOrderType = "custom-cake"
	ContactCatering   ContactOrderType = "catering"
	ContactCorporate  ContactOrderType = "corporate"
	ContactWedding    ContactOrderType = "wedding"
	ContactComplaint  ContactOrderType = "complaint"

	PreferredContactEmail PreferredContact = "email"
	PreferredContactPhone PreferredContact = "phone"
)

type ContactSubmission struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"index" json:"user_id,omitempty"` // empty for guests
	Name   string `gorm:"not null" json:"name"`
	Email  string `gorm:"not null" json:"email"`
	Phone  string `json:"phone"`

	Subject          string           `gorm:"not null" json:"subject"`
	Message          string           `gorm:"not null" json:"message"`
	OrderType        ContactOrderType `gorm:"type:VARCHAR(20);default:'general'" json:"order_type"`
	PreferredContact PreferredContact `gorm:"type:VARCHAR(10);default:'email'" json:"preferred_contact"`

	Responded  bool   `gorm:"default:false" json:"responded"`
	AdminNotes string `json:"admin_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
