package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db}
}

// FindAll returns all tasks, newest first
func (r *TaskRepo) FindAll(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// FindAllByProject returns a project's tasks in creation order
func (r *TaskRepo) FindAllByProject(ctx context.Context, projectID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

// FindByID returns a task by its ID, or nil when no such task exists
func (r *TaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindDetail returns a task with its owned relationships eagerly loaded
func (r *TaskRepo) FindDetail(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("SubTasks").
		Preload("Tags").
		Preload("TimeEntries").
		Preload("Comments").
		Preload("Comments.Author").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateFields inserts a new task from a validated column map
func (r *TaskRepo) CreateFields(ctx context.Context, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.Task{}).Create(map[string]any(fields)).Error
}

// UpdateFields applies a validated column map over an existing task
func (r *TaskRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Updates(map[string]any(fields)).Error
}

// Delete removes a task and everything it owns
func (r *TaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteTaskChildren(tx, []uuid.UUID{id}); err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, "id = ?", id).Error
	})
}

// Count returns the number of tasks
func (r *TaskRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Count(&n).Error
	return n, err
}

// deleteTaskChildren removes the owned rows of the given tasks inside an
// open transaction.
func deleteTaskChildren(tx *gorm.DB, taskIDs []uuid.UUID) error {
	if err := tx.Delete(&models.SubTask{}, "task_id IN ?", taskIDs).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.Tag{}, "task_id IN ?", taskIDs).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.TimeEntry{}, "task_id IN ?", taskIDs).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Comment{}, "task_id IN ?", taskIDs).Error
}
