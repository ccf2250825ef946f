package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

type ClientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) *ClientRepo {
	return &ClientRepo{db}
}

// FindAll returns all clients ordered by name
func (r *ClientRepo) FindAll(ctx context.Context) ([]*models.Client, error) {
	var clients []*models.Client
	err := r.db.WithContext(ctx).Order("name ASC").Find(&clients).Error
	return clients, err
}

// FindByID returns a client by its ID, or nil when no such client exists
func (r *ClientRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// CreateFields inserts a new client from a validated column map
func (r *ClientRepo) CreateFields(ctx context.Context, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.Client{}).Create(map[string]any(fields)).Error
}

// UpdateFields applies a validated column map over an existing client
func (r *ClientRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields validate.Fields) error {
	return r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Updates(map[string]any(fields)).Error
}

// Delete removes a client by id. A client still referenced by projects is
// rejected by the store's foreign key constraint.
func (r *ClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id).Error
}

// Count returns the number of clients
func (r *ClientRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&n).Error
	return n, err
}
