package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetCode is a single-use code mailed to a user. The code stays
// valid until it expires or is consumed.
type PasswordResetCode struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index"`
	Code      string    `json:"-" db:"code" gorm:"type:text;not null;uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" db:"used" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
