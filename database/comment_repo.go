package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByID returns a comment by its ID, or nil when no such comment exists
func (r *CommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindAllByProject returns a project's comments with authors, oldest first
func (r *CommentRepo) FindAllByProject(ctx context.Context, projectID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// FindAllByTask returns a task's comments with authors, oldest first
func (r *CommentRepo) FindAllByTask(ctx context.Context, taskID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CreateFields inserts a new comment from a validated column map
func (r *CommentRepo) CreateFields(ctx context.Context, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.Comment{}).Create(map[string]any(fields)).Error
}

// UpdateFields applies a validated column map over an existing comment
func (r *CommentRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Updates(map[string]any(fields)).Error
}

// Delete removes a comment by id
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id).Error
}
