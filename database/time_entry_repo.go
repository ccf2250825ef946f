package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type TimeEntryRepo struct {
	db *gorm.DB
}

func NewTimeEntryRepo(db *gorm.DB) *TimeEntryRepo {
	return &TimeEntryRepo{db}
}

// FindByID returns a time entry by its ID, or nil when no such entry exists
func (r *TimeEntryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindAllByTask returns a task's time entries, oldest first
func (r *TimeEntryRepo) FindAllByTask(ctx context.Context, taskID uuid.UUID) ([]*models.TimeEntry, error) {
	var entries []*models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("started_at ASC").
		Find(&entries).Error
	return entries, err
}

// CreateFields inserts a new time entry from a validated column map
func (r *TimeEntryRepo) CreateFields(ctx context.Context, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.TimeEntry{}).Create(map[string]any(fields)).Error
}

// UpdateFields applies a validated column map over an existing time entry
func (r *TimeEntryRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.TimeEntry{}).Where("id = ?", id).Updates(map[string]any(fields)).Error
}

// Delete removes a time entry by id
func (r *TimeEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TimeEntry{}, "id = ?", id).Error
}
