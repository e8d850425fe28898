package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsPost struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string     `gorm:"size:255;not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Image      string     `gorm:"type:text;not null" json:"image"`
	Date       time.Time  `gorm:"not null" json:"date"`
	Categories []Category `gorm:"many2many:news_post_categories" json:"categories"`
	Comments   []Comment  `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *NewsPost) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}

// NewsPostCategory is one edge of the post/category relation. It is declared
// explicitly so tag replacement and pre-delete cleanup can target the join
// rows directly.
type NewsPostCategory struct {
	NewsPostID uuid.UUID `gorm:"type:uuid;primaryKey" json:"news_post_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
}

func (NewsPostCategory) TableName() string { return "news_post_categories" }

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}
