package cart

import (
	"time"

	"gorm.io/gorm"

	"github.com/sweetdessert/dessert-shop-api/models"
)

// GormStore persists one owner's cart to the database. The owner is a user ID
// for signed-in customers or a guest session ID.
type GormStore struct {
	db      *gorm.DB
	ownerID string
}

func NewGormStore(db *gorm.DB, ownerID string) *GormStore {
	return &GormStore{db: db, ownerID: ownerID}
}

func (s *GormStore) Load() ([]LineItem, error) {
	var cart models.Cart
	err := s.db.Preload("Items").Where("owner_id = ?", s.ownerID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items := make([]LineItem, 0, len(cart.Items))
	for _, row := range cart.Items {
		items = append(items, LineItem{
			CartID:         row.LineID,
			ProductID:      row.ProductID,
			Name:           row.Name,
			Image:          row.Image,
			UnitPrice:      row.UnitPrice,
			Quantity:       row.Quantity,
			Customizations: row.Customizations,
		})
	}
	return items, nil
}

// Save rewrites the owner's cart rows to match the in-memory lines.
func (s *GormStore) Save(items []LineItem) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Where("owner_id = ?", s.ownerID).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			cart = models.Cart{OwnerID: s.ownerID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		for _, item := range items {
			row := models.CartItem{
				CartID:         cart.CartID,
				LineID:         item.CartID,
				ProductID:      item.ProductID,
				Name:           item.Name,
				Image:          item.Image,
				UnitPrice:      item.UnitPrice,
				Quantity:       item.Quantity,
				Customizations: item.Customizations,
				AddedAt:        time.Now(),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
