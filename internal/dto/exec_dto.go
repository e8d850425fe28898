package dto

import "github.com/google/uuid"

type CreateExecMemberRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Position string `json:"position" binding:"required,max=100"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

type UpdateExecMemberRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Position string `json:"position" binding:"required,max=100"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

type ExecMemberResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	ImageURL string    `json:"imageUrl"`
	Order    int       `json:"order"`
}
