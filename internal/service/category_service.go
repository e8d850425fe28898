package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/apperror"
	"github.com/gesscam/community-portal/pkg/slugify"
	"gorm.io/gorm"
)

// ContentType selects which join table a category count is computed from.
type ContentType string

const (
	ContentNews    ContentType = "news"
	ContentGallery ContentType = "gallery"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	ListWithCounts(ctx context.Context, contentType ContentType) ([]dto.CategoryCountResponse, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateRequired(requiredField{"name", req.Name}); err != nil {
		return nil, err
	}

	slug := slugify.Make(req.Name)
	if slug == "" {
		return nil, apperror.Validation("name must contain at least one letter or digit")
	}

	if _, err := s.categoryRepo.FindBySlug(ctx, slug); err == nil {
		return nil, apperror.Conflict(fmt.Sprintf("category %q already exists", slug))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal(err)
	}

	category := &model.Category{Name: req.Name, Slug: slug}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		// A concurrent create can slip past the slug check; the unique
		// index still reports it as a conflict, not a server error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict(fmt.Sprintf("category %q already exists", slug))
		}
		return nil, internal(err)
	}

	resp := toCategoryResponse(*category)
	return &resp, nil
}

// ListWithCounts returns every category with the number of tagged items of
// the given content type. The frontend derives its "All" count by summing
// these, so an item tagged with two categories counts twice there.
func (s *categoryService) ListWithCounts(ctx context.Context, contentType ContentType) ([]dto.CategoryCountResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, internal(err)
	}

	out := make([]dto.CategoryCountResponse, 0, len(categories))
	for _, c := range categories {
		var count int64
		switch contentType {
		case ContentGallery:
			count, err = s.categoryRepo.CountGalleryImages(ctx, c.ID)
		default:
			count, err = s.categoryRepo.CountNewsPosts(ctx, c.ID)
		}
		if err != nil {
			return nil, internal(err)
		}
		out = append(out, dto.CategoryCountResponse{
			ID:    c.ID,
			Name:  c.Name,
			Slug:  c.Slug,
			Count: count,
		})
	}
	return out, nil
}
