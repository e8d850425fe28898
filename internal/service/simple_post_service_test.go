package service

import (
	"context"
	"testing"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboutPostLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewAboutService(repository.NewAboutRepository(db))

	created, err := svc.Create(context.Background(), dto.CreateSimplePostRequest{
		Title:   "Our Mission",
		Content: "<p>Serving the community since 1998.</p>",
	})
	require.NoError(t, err)
	assert.False(t, created.Date.IsZero())

	updated, err := svc.Update(context.Background(), created.ID, dto.UpdateSimplePostRequest{
		Title:   "Our Mission, Revised",
		Content: "<p>Still serving.</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "Our Mission, Revised", updated.Title)

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestHomePostUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewHomeService(repository.NewHomeRepository(db))

	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateSimplePostRequest{
		Title:   "t",
		Content: "c",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
