package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification is a per-user inbox entry. It is written and read on its own
// paths; the mutation pipeline does not emit notifications.
type Notification struct {
	ID        uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID      `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index"`
	Kind      string         `json:"kind" db:"kind" gorm:"type:text;not null"`
	Payload   datatypes.JSON `json:"payload,omitempty" db:"payload"`
	Read      bool           `json:"read" db:"read" gorm:"not null;default:false"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
