package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type SubTaskRepo struct {
	db *gorm.DB
}

func NewSubTaskRepo(db *gorm.DB) *SubTaskRepo {
	return &SubTaskRepo{db}
}

// FindByID returns a subtask by its ID, or nil when no such subtask exists
func (r *SubTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.SubTask, error) {
	var subTask models.SubTask
	err := r.db.WithContext(ctx).First(&subTask, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &subTask, nil
}

// CreateFields inserts a new subtask from a validated column map
func (r *SubTaskRepo) CreateFields(ctx context.Context, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.SubTask{}).Create(map[string]any(fields)).Error
}

// UpdateFields applies a validated column map over an existing subtask
func (r *SubTaskRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.SubTask{}).Where("id = ?", id).Updates(map[string]any(fields)).Error
}

// SetCompleted flips a subtask's completion flag
func (r *SubTaskRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	return r.db.WithContext(ctx).Model(&models.SubTask{}).Where("id = ?", id).Update("completed", completed).Error
}

// Delete removes a subtask by id
func (r *SubTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.SubTask{}, "id = ?", id).Error
}
