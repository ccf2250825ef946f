package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Task belongs to exactly one project. Subtasks, tags, time entries and
// comments are owned by the task and removed with it.
type Task struct {
	ID          uuid.UUID       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string          `json:"title" db:"title" gorm:"type:text;not null"`
	Description string          `json:"description" db:"description" gorm:"type:text"`
	Status      string          `json:"status" db:"status" gorm:"type:text;not null;default:pending"`
	Priority    string          `json:"priority" db:"priority" gorm:"type:text;not null;default:medium"`
	DueDate     *datatypes.Date `json:"due_date,omitempty" db:"due_date"`
	ProjectID   uuid.UUID       `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index"`
	TeamID      *uuid.UUID      `json:"team_id,omitempty" db:"team_id" gorm:"type:uuid;index"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`

	Owner       User        `json:"owner,omitempty" gorm:"foreignKey:UserID;references:ID"`
	SubTasks    []SubTask   `json:"sub_tasks,omitempty" gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE"`
	Tags        []Tag       `json:"tags,omitempty" gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE"`
	TimeEntries []TimeEntry `json:"time_entries,omitempty" gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE"`
	Comments    []Comment   `json:"comments,omitempty" gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE"`
}

// SubTask is a checklist item under a task.
type SubTask struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	TaskID    uuid.UUID `json:"task_id" db:"task_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Completed bool      `json:"completed" db:"completed" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Tag is a free-form label on a task.
type Tag struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	TaskID uuid.UUID `json:"task_id" db:"task_id" gorm:"type:uuid;not null;index:idx_tag_task_id;uniqueIndex:idx_tag_unique"`
	Name   string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_tag_unique"`
	Color  *string   `json:"color,omitempty" db:"color" gorm:"type:text"`
}

// TimeEntry records time spent on a task. An open entry has no end time.
type TimeEntry struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	TaskID    uuid.UUID  `json:"task_id" db:"task_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id" gorm:"type:uuid;not null"`
	StartedAt time.Time  `json:"started_at" db:"started_at" gorm:"not null"`
	EndedAt   *time.Time `json:"ended_at,omitempty" db:"ended_at"`
	Note      string     `json:"note" db:"note" gorm:"type:text"`
}
