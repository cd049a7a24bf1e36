package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// MediaAsset records uploaded media served from /uploads: the homepage hero
// video, category banners, dessert photos.
type MediaAsset struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Kind      string         `json:"kind" gorm:"index"` // "hero-video", "banner", "image"
	FileName  string         `json:"file_name" gorm:"not null"`
	FileURL   string         `json:"file_url" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func SaveMediaAsset(db *gorm.DB, kind, fileName, fileURL string) (*MediaAsset, error) {
	asset := &MediaAsset{
		Kind:     kind,
		FileName: fileName,
		FileURL:  fileURL,
	}
	if err := db.Create(asset).Error; err != nil {
		return nil, err
	}

	log.Printf("📁 Saved media asset in DB: %s -> %s", fileName, fileURL)
	return asset, nil
}

func GetMediaAssets(db *gorm.DB, kind string) ([]MediaAsset, error) {
	var assets []MediaAsset
	q := db.Order("created_at DESC")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if err := q.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}
