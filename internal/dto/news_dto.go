package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNewsPostRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Image       string   `json:"image" binding:"required"`
	CategoryIDs []string `json:"categoryIds"`
}

type UpdateNewsPostRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Image       string   `json:"image" binding:"required"`
	CategoryIDs []string `json:"categoryIds"`
}

type NewsPostResponse struct {
	ID         uuid.UUID          `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Image      string             `json:"image"`
	Date       time.Time          `json:"date"`
	Categories []CategoryResponse `json:"categories"`
}

// NewsListResponse carries the posts plus the category sidebar data in one
// round trip.
type NewsListResponse struct {
	Posts      []NewsPostResponse      `json:"posts"`
	Categories []CategoryCountResponse `json:"categories"`
}

type NewsDetailResponse struct {
	NewsPostResponse
	Comments []CommentResponse `json:"comments"`
}

// NewsEditResponse feeds the admin edit form: the post, its current
// categories and the full category list to choose from.
type NewsEditResponse struct {
	Post          NewsPostResponse        `json:"post"`
	Categories    []CategoryResponse      `json:"categories"`
	AllCategories []CategoryCountResponse `json:"allCategories"`
}

// CategoryNewsResponse is the category page payload: the category plus its
// posts, newest first.
type CategoryNewsResponse struct {
	Category CategoryResponse   `json:"category"`
	Posts    []NewsPostResponse `json:"posts"`
}
