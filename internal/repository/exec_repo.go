package repository

import (
	"context"
	"time"

	"github.com/gesscam/community-portal/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExecRepository interface {
	Create(ctx context.Context, member *model.ExecMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ExecMember, error)
	FindAll(ctx context.Context) ([]model.ExecMember, error)
	Update(ctx context.Context, member *model.ExecMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type execRepository struct {
	db *gorm.DB
}

func NewExecRepository(db *gorm.DB) ExecRepository {
	return &execRepository{db: db}
}

// Create assigns the next sort order as a subquery of the insert statement
// itself, so there is no read-modify-write window between reading the
// maximum and writing the row.
func (r *execRepository) Create(ctx context.Context, member *model.ExecMember) error {
	if member.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		member.ID = id
	}

	if err := r.db.WithContext(ctx).Model(&model.ExecMember{}).Create(map[string]interface{}{
		"id":         member.ID,
		"name":       member.Name,
		"position":   member.Position,
		"image_url":  member.ImageURL,
		"sort_order": gorm.Expr("(SELECT COALESCE(MAX(m.sort_order), 0) + 1 FROM exec_members m)"),
		"created_at": time.Now(),
	}).Error; err != nil {
		return err
	}

	// Reload to pick up the order the database computed.
	return r.db.WithContext(ctx).First(member, "id = ?", member.ID).Error
}

func (r *execRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ExecMember, error) {
	var member model.ExecMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *execRepository) FindAll(ctx context.Context) ([]model.ExecMember, error) {
	var members []model.ExecMember
	if err := r.db.WithContext(ctx).Order("sort_order asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *execRepository) Update(ctx context.Context, member *model.ExecMember) error {
	return r.db.WithContext(ctx).
		Model(&model.ExecMember{ID: member.ID}).
		Updates(map[string]interface{}{
			"name":      member.Name,
			"position":  member.Position,
			"image_url": member.ImageURL,
		}).Error
}

func (r *execRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ExecMember{}, "id = ?", id).Error
}
