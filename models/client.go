package models

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a customer that projects can be billed against.
type Client struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     *string   `json:"email,omitempty" db:"email" gorm:"type:text"`
	Phone     *string   `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Address   *string   `json:"address,omitempty" db:"address" gorm:"type:text"`
	Zipcode   *string   `json:"zipcode,omitempty" db:"zipcode" gorm:"type:text"`
	State     *string   `json:"state,omitempty" db:"state" gorm:"type:text"`
	City      *string   `json:"city,omitempty" db:"city" gorm:"type:text"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Deleting a client that projects still reference is rejected by the
	// store; the reference is a plain foreign key, not ownership.
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:RESTRICT"`
}
