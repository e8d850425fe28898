package repository

import (
	"context"

	"github.com/gesscam/community-portal/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PageRepository interface {
	FindBySlug(ctx context.Context, pageSlug string) (*model.PageContent, error)
	Upsert(ctx context.Context, page *model.PageContent) error
}

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) FindBySlug(ctx context.Context, pageSlug string) (*model.PageContent, error) {
	var page model.PageContent
	if err := r.db.WithContext(ctx).Where("page_slug = ?", pageSlug).First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// Upsert creates the row for a page slug or updates the existing one; the
// unique index on page_slug makes the conflict target safe.
func (r *pageRepository) Upsert(ctx context.Context, page *model.PageContent) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page_slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "hero_image", "content", "updated_at"}),
	}).Create(page).Error
}
