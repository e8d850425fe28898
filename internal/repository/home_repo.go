package repository

import (
	"context"

	"github.com/gesscam/community-portal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HomeRepository interface {
	Create(ctx context.Context, post *model.HomePost) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.HomePost, error)
	FindAll(ctx context.Context) ([]model.HomePost, error)
	Update(ctx context.Context, post *model.HomePost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type homeRepository struct {
	db *gorm.DB
}

func NewHomeRepository(db *gorm.DB) HomeRepository {
	return &homeRepository{db: db}
}

func (r *homeRepository) Create(ctx context.Context, post *model.HomePost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *homeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.HomePost, error) {
	var post model.HomePost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *homeRepository) FindAll(ctx context.Context) ([]model.HomePost, error) {
	var posts []model.HomePost
	if err := r.db.WithContext(ctx).Order("date desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *homeRepository) Update(ctx context.Context, post *model.HomePost) error {
	return r.db.WithContext(ctx).
		Model(&model.HomePost{ID: post.ID}).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
		}).Error
}

func (r *homeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.HomePost{}, "id = ?", id).Error
}
