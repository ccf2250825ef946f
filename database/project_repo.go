package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects, newest first
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindAllByUser returns the projects a user owns or is shared into
func (r *ProjectRepo) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Or("id IN (?)", r.db.Table("project_shares").Select("project_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no such project exists
func (r *ProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindDetail is the read projector: it returns the project with its full
// eager relationship traversal — client, owner, team, shared users, tasks
// with their subtasks/tags/comments/time entries, and project-level comments
// with authors. A missing root surfaces as a not-found error.
func (r *ProjectRepo) FindDetail(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Owner").
		Preload("Team").
		Preload("Team.Members").
		Preload("SharedWith").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.created_at ASC")
		}).
		Preload("Tasks.SubTasks").
		Preload("Tasks.Tags").
		Preload("Tasks.TimeEntries").
		Preload("Tasks.Comments").
		Preload("Tasks.Comments.Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateFields inserts a new project from a validated column map
func (r *ProjectRepo) CreateFields(ctx context.Context, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.Project{}).Create(map[string]any(fields)).Error
}

// UpdateFields applies a validated column map over an existing project
func (r *ProjectRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Updates(map[string]any(fields)).Error
}

// Delete removes a project by id. Owned tasks (with their subtasks, tags,
// time entries and comments), project comments and share rows go with it.
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taskIDs []uuid.UUID
		if err := tx.Model(&models.Task{}).Where("project_id = ?", id).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		if len(taskIDs) > 0 {
			if err := deleteTaskChildren(tx, taskIDs); err != nil {
				return err
			}
			if err := tx.Delete(&models.Task{}, "project_id = ?", id).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Comment{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM project_shares WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// Share grants a user access to a project
func (r *ProjectRepo) Share(ctx context.Context, projectID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Project{ID: projectID}).
		Association("SharedWith").
		Append(&models.User{ID: userID})
}

// Count returns the number of projects
func (r *ProjectRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&n).Error
	return n, err
}
