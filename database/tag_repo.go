package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindByID returns a tag by its ID, or nil when no such tag exists
func (r *TagRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).First(&tag, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateFields inserts a new tag from a validated column map
func (r *TagRepo) CreateFields(ctx context.Context, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.Tag{}).Create(map[string]any(fields)).Error
}

// UpdateFields applies a validated column map over an existing tag
func (r *TagRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.Tag{}).Where("id = ?", id).Updates(map[string]any(fields)).Error
}

// Delete removes a tag by id
func (r *TagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Tag{}, "id = ?", id).Error
}
