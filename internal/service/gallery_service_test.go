package service

import (
	"context"
	"testing"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGalleryServiceForTest(db *gorm.DB) GalleryService {
	categoryRepo := repository.NewCategoryRepository(db)
	categoryService := NewCategoryService(categoryRepo)
	return NewGalleryService(repository.NewGalleryRepository(db), categoryRepo, categoryService)
}

func TestGalleryCreateWithCategories(t *testing.T) {
	db := newTestDB(t)
	svc := newGalleryServiceForTest(db)

	events := createTestCategory(t, db, "Community Events", "community-events")

	created, err := svc.Create(context.Background(), dto.CreateGalleryImageRequest{
		Title:       "Gala Night",
		Description: "<p>Photos from the gala.</p>",
		ImageURL:    "https://example.com/gala.jpg",
		CategoryIDs: []string{events.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, created.Categories, 1)
	assert.Equal(t, "community-events", created.Categories[0].Slug)
}

func TestGalleryDeleteRemovesJoins(t *testing.T) {
	db := newTestDB(t)
	svc := newGalleryServiceForTest(db)

	events := createTestCategory(t, db, "Community Events", "community-events")
	created, err := svc.Create(context.Background(), dto.CreateGalleryImageRequest{
		Title:       "Gala Night",
		Description: "d",
		ImageURL:    "i",
		CategoryIDs: []string{events.ID.String()},
	})
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	var images, joins int64
	require.NoError(t, db.Model(&model.GalleryImage{}).Where("id = ?", created.ID).Count(&images).Error)
	require.NoError(t, db.Model(&model.GalleryImageCategory{}).Where("gallery_image_id = ?", created.ID).Count(&joins).Error)
	assert.Zero(t, images)
	assert.Zero(t, joins)
}

func TestGalleryCategorySlugNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newGalleryServiceForTest(db)

	_, err := svc.GetByCategorySlug(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGalleryListSeparatesCountsFromNews(t *testing.T) {
	db := newTestDB(t)
	svc := newGalleryServiceForTest(db)

	events := createTestCategory(t, db, "Community Events", "community-events")

	// A news post tagged with the same category must not inflate gallery
	// counts.
	post := &model.NewsPost{Title: "t", Content: "c", Image: "i"}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, db.Create(&model.NewsPostCategory{NewsPostID: post.ID, CategoryID: events.ID}).Error)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Categories, 1)
	assert.Equal(t, int64(0), list.Categories[0].Count)
}
