package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateGalleryImageRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"imageUrl" binding:"required"`
	CategoryIDs []string `json:"categoryIds"`
}

type UpdateGalleryImageRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"imageUrl" binding:"required"`
	CategoryIDs []string `json:"categoryIds"`
}

type GalleryImageResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ImageURL    string             `json:"imageUrl"`
	Date        time.Time          `json:"date"`
	Categories  []CategoryResponse `json:"categories"`
}

type GalleryListResponse struct {
	Images     []GalleryImageResponse  `json:"images"`
	Categories []CategoryCountResponse `json:"categories"`
}

type CategoryGalleryResponse struct {
	Category CategoryResponse       `json:"category"`
	Images   []GalleryImageResponse `json:"images"`
}
