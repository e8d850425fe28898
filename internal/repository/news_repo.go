package repository

import (
	"context"

	"github.com/gesscam/community-portal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsRepository interface {
	Create(ctx context.Context, post *model.NewsPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.NewsPost, error)
	FindByIDWithComments(ctx context.Context, id uuid.UUID) (*model.NewsPost, error)
	FindAll(ctx context.Context) ([]model.NewsPost, error)
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]model.NewsPost, error)
	Update(ctx context.Context, post *model.NewsPost) error
	ReplaceCategories(ctx context.Context, postID uuid.UUID, categoryIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, post *model.NewsPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *newsRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.NewsPost, error) {
	var post model.NewsPost
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *newsRepository) FindByIDWithComments(ctx context.Context, id uuid.UUID) (*model.NewsPost, error) {
	var post model.NewsPost
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at desc")
		}).
		First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *newsRepository) FindAll(ctx context.Context) ([]model.NewsPost, error) {
	var posts []model.NewsPost
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Order("date desc").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *newsRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]model.NewsPost, error) {
	var posts []model.NewsPost
	if err := r.db.WithContext(ctx).
		Joins("JOIN news_post_categories ON news_post_categories.news_post_id = news_posts.id").
		Where("news_post_categories.category_id = ?", categoryID).
		Order("news_posts.date desc").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *newsRepository) Update(ctx context.Context, post *model.NewsPost) error {
	return r.db.WithContext(ctx).
		Model(&model.NewsPost{ID: post.ID}).
		Select("title", "content", "image").
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
			"image":   post.Image,
		}).Error
}

// ReplaceCategories swaps the full association set in one transaction so a
// failure mid-way cannot leave a half-replaced tag set.
func (r *newsRepository) ReplaceCategories(ctx context.Context, postID uuid.UUID, categoryIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_post_id = ?", postID).
			Delete(&model.NewsPostCategory{}).Error; err != nil {
			return err
		}
		if len(categoryIDs) == 0 {
			return nil
		}
		joins := make([]model.NewsPostCategory, 0, len(categoryIDs))
		for _, categoryID := range categoryIDs {
			joins = append(joins, model.NewsPostCategory{
				NewsPostID: postID,
				CategoryID: categoryID,
			})
		}
		return tx.Create(&joins).Error
	})
}

// Delete removes the post together with its join rows and comments in one
// transaction, so no orphans survive a crash between steps.
func (r *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_post_id = ?", id).
			Delete(&model.NewsPostCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).
			Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.NewsPost{}, "id = ?", id).Error
	})
}
