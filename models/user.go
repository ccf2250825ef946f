package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account able to own projects and tasks. Users created
// through an external identity provider may carry no password hash.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name         string    `json:"name" db:"name" gorm:"type:text;not null"`
	Surname      *string   `json:"surname,omitempty" db:"surname" gorm:"type:text"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	PasswordHash *string   `json:"-" db:"password_hash" gorm:"type:text"`
	Image        *string   `json:"image,omitempty" db:"image" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
