package service

import (
	"context"
	"time"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/sanitize"
	"github.com/google/uuid"
)

type AboutService interface {
	List(ctx context.Context) ([]dto.SimplePostResponse, error)
	Create(ctx context.Context, req dto.CreateSimplePostRequest) (*dto.SimplePostResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSimplePostRequest) (*dto.SimplePostResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.SimplePostResponse, error)
}

type aboutService struct {
	aboutRepo repository.AboutRepository
}

func NewAboutService(aboutRepo repository.AboutRepository) AboutService {
	return &aboutService{aboutRepo: aboutRepo}
}

func (s *aboutService) List(ctx context.Context) ([]dto.SimplePostResponse, error) {
	posts, err := s.aboutRepo.FindAll(ctx)
	if err != nil {
		return nil, internal(err)
	}

	out := make([]dto.SimplePostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.SimplePostResponse{ID: p.ID, Title: p.Title, Content: p.Content, Date: p.Date})
	}
	return out, nil
}

func (s *aboutService) Create(ctx context.Context, req dto.CreateSimplePostRequest) (*dto.SimplePostResponse, error) {
	if err := validateRequired(
		requiredField{"title", req.Title},
		requiredField{"content", req.Content},
	); err != nil {
		return nil, err
	}

	post := &model.AboutPost{
		Title:   sanitize.Text(req.Title),
		Content: sanitize.HTML(req.Content),
		Date:    time.Now(),
	}
	if err := s.aboutRepo.Create(ctx, post); err != nil {
		return nil, internal(err)
	}

	return &dto.SimplePostResponse{ID: post.ID, Title: post.Title, Content: post.Content, Date: post.Date}, nil
}

func (s *aboutService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSimplePostRequest) (*dto.SimplePostResponse, error) {
	if err := validateRequired(
		requiredField{"title", req.Title},
		requiredField{"content", req.Content},
	); err != nil {
		return nil, err
	}

	post, err := s.aboutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Post not found")
	}

	post.Title = sanitize.Text(req.Title)
	post.Content = sanitize.HTML(req.Content)
	if err := s.aboutRepo.Update(ctx, post); err != nil {
		return nil, internal(err)
	}

	return &dto.SimplePostResponse{ID: post.ID, Title: post.Title, Content: post.Content, Date: post.Date}, nil
}

func (s *aboutService) Delete(ctx context.Context, id uuid.UUID) (*dto.SimplePostResponse, error) {
	post, err := s.aboutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Post not found")
	}

	if err := s.aboutRepo.Delete(ctx, id); err != nil {
		return nil, internal(err)
	}

	return &dto.SimplePostResponse{ID: post.ID, Title: post.Title, Content: post.Content, Date: post.Date}, nil
}
