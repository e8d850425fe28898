package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExecMember is one entry of the executive-body roster. SortOrder controls
// display sequence; it is only a sort key, neither unique nor contiguous.
type ExecMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Position  string    `gorm:"size:100;not null" json:"position"`
	ImageURL  string    `gorm:"type:text;not null" json:"imageUrl"`
	SortOrder int       `gorm:"column:sort_order;not null" json:"order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (m *ExecMember) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID, err = uuid.NewV7()
	}
	return
}
