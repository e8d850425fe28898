package repository

import (
	"context"

	"github.com/gesscam/community-portal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryRepository interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error)
	FindAll(ctx context.Context) ([]model.GalleryImage, error)
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]model.GalleryImage, error)
	Update(ctx context.Context, image *model.GalleryImage) error
	ReplaceCategories(ctx context.Context, imageID uuid.UUID, categoryIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error) {
	var image model.GalleryImage
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) FindAll(ctx context.Context) ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Order("date desc").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *galleryRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	if err := r.db.WithContext(ctx).
		Joins("JOIN gallery_image_categories ON gallery_image_categories.gallery_image_id = gallery_images.id").
		Where("gallery_image_categories.category_id = ?", categoryID).
		Order("gallery_images.date desc").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *galleryRepository) Update(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).
		Model(&model.GalleryImage{ID: image.ID}).
		Updates(map[string]interface{}{
			"title":       image.Title,
			"description": image.Description,
			"image_url":   image.ImageURL,
		}).Error
}

func (r *galleryRepository) ReplaceCategories(ctx context.Context, imageID uuid.UUID, categoryIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gallery_image_id = ?", imageID).
			Delete(&model.GalleryImageCategory{}).Error; err != nil {
			return err
		}
		if len(categoryIDs) == 0 {
			return nil
		}
		joins := make([]model.GalleryImageCategory, 0, len(categoryIDs))
		for _, categoryID := range categoryIDs {
			joins = append(joins, model.GalleryImageCategory{
				GalleryImageID: imageID,
				CategoryID:     categoryID,
			})
		}
		return tx.Create(&joins).Error
	})
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gallery_image_id = ?", id).
			Delete(&model.GalleryImageCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GalleryImage{}, "id = ?", id).Error
	})
}
