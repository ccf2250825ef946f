package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskdeck-app/taskdeck/backend/models"
)

type PasswordResetRepo struct {
	db *gorm.DB
}

func NewPasswordResetRepo(db *gorm.DB) *PasswordResetRepo {
	return &PasswordResetRepo{db}
}

// Add inserts a new reset code
func (r *PasswordResetRepo) Add(ctx context.Context, code *models.PasswordResetCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// FindByCode returns an unconsumed reset code, or nil when none matches
func (r *PasswordResetRepo) FindByCode(ctx context.Context, code string) (*models.PasswordResetCode, error) {
	var reset models.PasswordResetCode
	err := r.db.WithContext(ctx).First(&reset, "code = ? AND used = ?", code, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

// MarkUsed consumes a reset code so it cannot be replayed
func (r *PasswordResetRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.PasswordResetCode{}).Where("id = ?", id).Update("used", true).Error
}
