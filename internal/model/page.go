package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageContent holds the editable hero section and body of a logical page.
// One row per pageSlug, upserted — never multiplied.
type PageContent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PageSlug  string    `gorm:"size:100;uniqueIndex;not null" json:"pageSlug"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	HeroImage string    `gorm:"type:text;not null" json:"heroImage"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *PageContent) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}
