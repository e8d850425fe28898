package service

import (
	"context"
	"testing"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsCreateWithCategories(t *testing.T) {
	db := newTestDB(t)
	svc := newNewsServiceForTest(db)

	sports := createTestCategory(t, db, "Sports", "sports")

	created, err := svc.Create(context.Background(), dto.CreateNewsPostRequest{
		Title:       "Match Report",
		Content:     "<p>We won.</p>",
		Image:       "https://example.com/match.jpg",
		CategoryIDs: []string{sports.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, created.Categories, 1)
	assert.Equal(t, "sports", created.Categories[0].Slug)
	assert.False(t, created.Date.IsZero())
}

func TestNewsCreateSanitizesContent(t *testing.T) {
	db := newTestDB(t)
	svc := newNewsServiceForTest(db)

	created, err := svc.Create(context.Background(), dto.CreateNewsPostRequest{
		Title:   "<b>Bold</b> Title",
		Content: `<p>ok</p><script>alert(1)</script>`,
		Image:   "img.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bold Title", created.Title)
	assert.NotContains(t, created.Content, "script")
}

func TestNewsCreateDeduplicatesCategoryIDs(t *testing.T) {
	db := newTestDB(t)
	svc := newNewsServiceForTest(db)

	sports := createTestCategory(t, db, "Sports", "sports")

	created, err := svc.Create(context.Background(), dto.CreateNewsPostRequest{
		Title:       "t",
		Content:     "c",
		Image:       "i",
		CategoryIDs: []string{sports.ID.String(), sports.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, created.Categories, 1)

	var joins int64
	require.NoError(t, db.Model(&model.NewsPostCategory{}).
		Where("news_post_id = ?", created.ID).Count(&joins).Error)
	assert.Equal(t, int64(1), joins)
}

func TestNewsCreateUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newNewsServiceForTest(db)

	_, err := svc.Create(context.Background(), dto.CreateNewsPostRequest{
		Title:       "t",
		Content:     "c",
		Image:       "i",
		CategoryIDs: []string{uuid.NewString()},
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestNewsUpdateReplacesCategories(t *testing.T) {
	db := newTestDB(t)
	svc := newNewsServiceForTest(db)

	sports := createTestCategory(t, db, "Sports", "sports")
	culture := createTestCategory(t, db, "Culture", "culture")

	created, err := svc.Create(context.Background(), dto.CreateNewsPostRequest{
		Title:       "t",
		Content:     "c",
		Image:       "i",
		CategoryIDs: []string{sports.ID.String()},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, dto.UpdateNewsPostRequest{
		Title:       "t2",
		Content:     "c2",
		Image:       "i2",
		CategoryIDs: []string{culture.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, updated.Categories, 1)
	assert.Equal(t, "culture", updated.Categories[0].Slug)

	// The old join row must be gone, not just superseded.
	var joins int64
	require.NoError(t, db.Model(&model.NewsPostCategory{}).
		Where("news_post_id = ?", created.ID).Count(&joins).Error)
	assert.Equal(t, int64(1), joins)
}

func TestNewsDeleteRemovesJoinsAndComments(t *testing.T) {
	db := newTestDB(t)
	svc := newNewsServiceForTest(db)

	sports := createTestCategory(t, db, "Sports", "sports")
	author := createTestUser(t, db, "author@example.com", model.RoleUser)

	created, err := svc.Create(context.Background(), dto.CreateNewsPostRequest{
		Title:       "t",
		Content:     "c",
		Image:       "i",
		CategoryIDs: []string{sports.ID.String()},
	})
	require.NoError(t, err)

	comment := &model.Comment{Content: "nice", PostID: created.ID, AuthorID: author.ID}
	require.NoError(t, db.Create(comment).Error)

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	var posts, joins, comments int64
	require.NoError(t, db.Model(&model.NewsPost{}).Where("id = ?", created.ID).Count(&posts).Error)
	require.NoError(t, db.Model(&model.NewsPostCategory{}).Where("news_post_id = ?", created.ID).Count(&joins).Error)
	require.NoError(t, db.Model(&model.Comment{}).Where("post_id = ?", created.ID).Count(&comments).Error)
	assert.Zero(t, posts)
	assert.Zero(t, joins)
	assert.Zero(t, comments)

	// The category itself survives the post deletion.
	var categories int64
	require.NoError(t, db.Model(&model.Category{}).Count(&categories).Error)
	assert.Equal(t, int64(1), categories)
}

func TestNewsGetByCategorySlugNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newNewsServiceForTest(db)

	_, err := svc.GetByCategorySlug(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNewsGetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newNewsServiceForTest(db)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNewsListIncludesCategoryCounts(t *testing.T) {
	db := newTestDB(t)
	svc := newNewsServiceForTest(db)

	sports := createTestCategory(t, db, "Sports", "sports")
	_, err := svc.Create(context.Background(), dto.CreateNewsPostRequest{
		Title:       "t",
		Content:     "c",
		Image:       "i",
		CategoryIDs: []string{sports.ID.String()},
	})
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Posts, 1)
	require.Len(t, list.Categories, 1)
	assert.Equal(t, int64(1), list.Categories[0].Count)
}
