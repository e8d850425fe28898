package repository

import (
	"context"

	"github.com/gesscam/community-portal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AboutRepository interface {
	Create(ctx context.Context, post *model.AboutPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.AboutPost, error)
	FindAll(ctx context.Context) ([]model.AboutPost, error)
	Update(ctx context.Context, post *model.AboutPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type aboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository(db *gorm.DB) AboutRepository {
	return &aboutRepository{db: db}
}

func (r *aboutRepository) Create(ctx context.Context, post *model.AboutPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *aboutRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AboutPost, error) {
	var post model.AboutPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *aboutRepository) FindAll(ctx context.Context) ([]model.AboutPost, error) {
	var posts []model.AboutPost
	if err := r.db.WithContext(ctx).Order("date desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *aboutRepository) Update(ctx context.Context, post *model.AboutPost) error {
	return r.db.WithContext(ctx).
		Model(&model.AboutPost{ID: post.ID}).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
		}).Error
}

func (r *aboutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AboutPost{}, "id = ?", id).Error
}
