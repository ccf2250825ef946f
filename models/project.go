package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project is the top-level unit of work. It owns its tasks and comments;
// client and team are references, not ownership.
type Project struct {
	ID          uuid.UUID       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string          `json:"name" db:"name" gorm:"type:text;not null"`
	Description string          `json:"description" db:"description" gorm:"type:text"`
	Status      string          `json:"status" db:"status" gorm:"type:text;not null;default:pending"`
	DueDate     *datatypes.Date `json:"due_date,omitempty" db:"due_date"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index"`
	ClientID    *uuid.UUID      `json:"client_id,omitempty" db:"client_id" gorm:"type:uuid;index"`
	TeamID      *uuid.UUID      `json:"team_id,omitempty" db:"team_id" gorm:"type:uuid;index"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`

	Owner      User      `json:"owner,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Client     *Client   `json:"client,omitempty" gorm:"foreignKey:ClientID;references:ID"`
	Team       *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;references:ID"`
	SharedWith []User    `json:"shared_with,omitempty" gorm:"many2many:project_shares"`
	Tasks      []Task    `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Comments   []Comment `json:"comments,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
