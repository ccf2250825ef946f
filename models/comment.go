package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is attached to exactly one of a project or a task.
type Comment struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Content   string     `json:"content" db:"content" gorm:"type:text;not null"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index"`
	ProjectID *uuid.UUID `json:"project_id,omitempty" db:"project_id" gorm:"type:uuid;index"`
	TaskID    *uuid.UUID `json:"task_id,omitempty" db:"task_id" gorm:"type:uuid;index"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`

	Author User `json:"author,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
