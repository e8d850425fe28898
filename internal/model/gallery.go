package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	ImageURL    string     `gorm:"type:text;not null" json:"imageUrl"`
	Date        time.Time  `gorm:"not null" json:"date"`
	Categories  []Category `gorm:"many2many:gallery_image_categories" json:"categories"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID, err = uuid.NewV7()
	}
	return
}

type GalleryImageCategory struct {
	GalleryImageID uuid.UUID `gorm:"type:uuid;primaryKey" json:"gallery_image_id"`
	CategoryID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
}

func (GalleryImageCategory) TableName() string { return "gallery_image_categories" }
