package dto

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// CategoryCountResponse adds the number of tagged items, rendered as "(N)"
// beside the category name in the sidebar.
type CategoryCountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Count int64     `json:"count"`
}
