package models

import (
	"time"

	"github.com/google/uuid"
)

// Team groups users so projects and tasks can be assigned collectively.
type Team struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Members []User `json:"members,omitempty" gorm:"many2many:team_members"`
}
