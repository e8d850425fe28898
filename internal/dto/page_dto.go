package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdatePageRequest struct {
	Title     string `json:"title" binding:"required"`
	HeroImage string `json:"heroImage" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type PageResponse struct {
	ID        uuid.UUID `json:"id"`
	PageSlug  string    `json:"pageSlug"`
	Title     string    `json:"title"`
	HeroImage string    `json:"heroImage"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
