package service

import (
	"context"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/apperror"
	"github.com/gesscam/community-portal/pkg/sanitize"
	"github.com/gesscam/community-portal/pkg/slugify"
)

type PageService interface {
	Get(ctx context.Context, pageSlug string) (*dto.PageResponse, error)
	// Upsert creates the page row if absent, otherwise overwrites its
	// fields; used for both seeding and hero-section edits.
	Upsert(ctx context.Context, pageSlug string, req dto.UpdatePageRequest) (*dto.PageResponse, error)
}

type pageService struct {
	pageRepo repository.PageRepository
}

func NewPageService(pageRepo repository.PageRepository) PageService {
	return &pageService{pageRepo: pageRepo}
}

func (s *pageService) Get(ctx context.Context, pageSlug string) (*dto.PageResponse, error) {
	page, err := s.pageRepo.FindBySlug(ctx, pageSlug)
	if err != nil {
		return nil, notFoundOr(err, "Page not found")
	}
	resp := toPageResponse(*page)
	return &resp, nil
}

func (s *pageService) Upsert(ctx context.Context, pageSlug string, req dto.UpdatePageRequest) (*dto.PageResponse, error) {
	if !slugify.IsValid(pageSlug) {
		return nil, apperror.Validation("invalid page slug")
	}
	if err := validateRequired(
		requiredField{"title", req.Title},
		requiredField{"heroImage", req.HeroImage},
		requiredField{"content", req.Content},
	); err != nil {
		return nil, err
	}

	page := &model.PageContent{
		PageSlug:  pageSlug,
		Title:     sanitize.Text(req.Title),
		HeroImage: req.HeroImage,
		Content:   sanitize.HTML(req.Content),
	}
	if err := s.pageRepo.Upsert(ctx, page); err != nil {
		return nil, internal(err)
	}

	saved, err := s.pageRepo.FindBySlug(ctx, pageSlug)
	if err != nil {
		return nil, internal(err)
	}
	resp := toPageResponse(*saved)
	return &resp, nil
}
