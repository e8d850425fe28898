package service

import (
	"context"
	"time"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/apperror"
	"github.com/gesscam/community-portal/pkg/sanitize"
	"github.com/google/uuid"
)

type GalleryService interface {
	List(ctx context.Context) (*dto.GalleryListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.GalleryImageResponse, error)
	GetByCategorySlug(ctx context.Context, slug string) (*dto.CategoryGalleryResponse, error)
	Create(ctx context.Context, req dto.CreateGalleryImageRequest) (*dto.GalleryImageResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateGalleryImageRequest) (*dto.GalleryImageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.GalleryImageResponse, error)
}

type galleryService struct {
	galleryRepo     repository.GalleryRepository
	categoryRepo    repository.CategoryRepository
	categoryService CategoryService
}

func NewGalleryService(galleryRepo repository.GalleryRepository, categoryRepo repository.CategoryRepository, categoryService CategoryService) GalleryService {
	return &galleryService{
		galleryRepo:     galleryRepo,
		categoryRepo:    categoryRepo,
		categoryService: categoryService,
	}
}

func (s *galleryService) List(ctx context.Context) (*dto.GalleryListResponse, error) {
	images, err := s.galleryRepo.FindAll(ctx)
	if err != nil {
		return nil, internal(err)
	}

	counts, err := s.categoryService.ListWithCounts(ctx, ContentGallery)
	if err != nil {
		return nil, err
	}

	out := make([]dto.GalleryImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, toGalleryImageResponse(img))
	}
	return &dto.GalleryListResponse{Images: out, Categories: counts}, nil
}

func (s *galleryService) Get(ctx context.Context, id uuid.UUID) (*dto.GalleryImageResponse, error) {
	image, err := s.galleryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Image not found")
	}
	resp := toGalleryImageResponse(*image)
	return &resp, nil
}

func (s *galleryService) GetByCategorySlug(ctx context.Context, slug string) (*dto.CategoryGalleryResponse, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "Category not found")
	}

	images, err := s.galleryRepo.FindByCategoryID(ctx, category.ID)
	if err != nil {
		return nil, internal(err)
	}

	out := make([]dto.GalleryImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, toGalleryImageResponse(img))
	}
	return &dto.CategoryGalleryResponse{
		Category: toCategoryResponse(*category),
		Images:   out,
	}, nil
}

func (s *galleryService) Create(ctx context.Context, req dto.CreateGalleryImageRequest) (*dto.GalleryImageResponse, error) {
	if err := validateRequired(
		requiredField{"title", req.Title},
		requiredField{"description", req.Description},
		requiredField{"imageUrl", req.ImageURL},
	); err != nil {
		return nil, err
	}

	categoryIDs, err := s.resolveCategoryIDs(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	image := &model.GalleryImage{
		Title:       sanitize.Text(req.Title),
		Description: sanitize.HTML(req.Description),
		ImageURL:    req.ImageURL,
		Date:        time.Now(),
	}
	if err := s.galleryRepo.Create(ctx, image); err != nil {
		return nil, internal(err)
	}

	if len(categoryIDs) > 0 {
		if err := s.galleryRepo.ReplaceCategories(ctx, image.ID, categoryIDs); err != nil {
			return nil, internal(err)
		}
	}

	created, err := s.galleryRepo.FindByID(ctx, image.ID)
	if err != nil {
		return nil, internal(err)
	}
	resp := toGalleryImageResponse(*created)
	return &resp, nil
}

func (s *galleryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateGalleryImageRequest) (*dto.GalleryImageResponse, error) {
	if err := validateRequired(
		requiredField{"title", req.Title},
		requiredField{"description", req.Description},
		requiredField{"imageUrl", req.ImageURL},
	); err != nil {
		return nil, err
	}

	image, err := s.galleryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Image not found")
	}

	categoryIDs, err := s.resolveCategoryIDs(ctx, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	image.Title = sanitize.Text(req.Title)
	image.Description = sanitize.HTML(req.Description)
	image.ImageURL = req.ImageURL
	if err := s.galleryRepo.Update(ctx, image); err != nil {
		return nil, internal(err)
	}

	if req.CategoryIDs != nil {
		if err := s.galleryRepo.ReplaceCategories(ctx, image.ID, categoryIDs); err != nil {
			return nil, internal(err)
		}
	}

	updated, err := s.galleryRepo.FindByID(ctx, image.ID)
	if err != nil {
		return nil, internal(err)
	}
	resp := toGalleryImageResponse(*updated)
	return &resp, nil
}

func (s *galleryService) Delete(ctx context.Context, id uuid.UUID) (*dto.GalleryImageResponse, error) {
	image, err := s.galleryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Image not found")
	}

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return nil, internal(err)
	}

	resp := toGalleryImageResponse(*image)
	return &resp, nil
}

func (s *galleryService) resolveCategoryIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	seen := make(map[uuid.UUID]bool, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, apperror.Validation("invalid category id: " + r)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		found, err := s.categoryRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, internal(err)
		}
		if len(found) != len(ids) {
			return nil, apperror.Validation("one or more categories do not exist")
		}
	}
	return ids, nil
}
