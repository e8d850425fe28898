package service

import (
	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
)

func toCategoryResponse(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func toCategoryResponses(categories []model.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

func toNewsPostResponse(p model.NewsPost) dto.NewsPostResponse {
	return dto.NewsPostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Image:      p.Image,
		Date:       p.Date,
		Categories: toCategoryResponses(p.Categories),
	}
}

func toGalleryImageResponse(g model.GalleryImage) dto.GalleryImageResponse {
	return dto.GalleryImageResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		ImageURL:    g.ImageURL,
		Date:        g.Date,
		Categories:  toCategoryResponses(g.Categories),
	}
}

func toCommentResponse(c model.Comment) dto.CommentResponse {
	username := "Anonymous"
	if c.Author.Username != "" {
		username = c.Author.Username
	}
	return dto.CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Username:  username,
		CreatedAt: c.CreatedAt,
	}
}

func toCommentResponses(comments []model.Comment) []dto.CommentResponse {
	out := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	return out
}

func toExecMemberResponse(m model.ExecMember) dto.ExecMemberResponse {
	return dto.ExecMemberResponse{
		ID:       m.ID,
		Name:     m.Name,
		Position: m.Position,
		ImageURL: m.ImageURL,
		Order:    m.SortOrder,
	}
}

func toPageResponse(p model.PageContent) dto.PageResponse {
	return dto.PageResponse{
		ID:        p.ID,
		PageSlug:  p.PageSlug,
		Title:     p.Title,
		HeroImage: p.HeroImage,
		Content:   p.Content,
		UpdatedAt: p.UpdatedAt,
	}
}

func toUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
