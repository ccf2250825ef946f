package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskProgressWithoutSubTasksFollowsStatus(t *testing.T) {
	task := &Task{Status: StatusPending}
	assert.Equal(t, 0.0, TaskProgress(task))

	task.Status = StatusCompleted
	assert.Equal(t, 1.0, TaskProgress(task))
}

func TestTaskProgressIsCompletedFraction(t *testing.T) {
	task := &Task{
		Status: StatusInProgress,
		SubTasks: []SubTask{
			{Completed: true},
			{Completed: true},
			{Completed: false},
			{Completed: false},
		},
	}
	assert.Equal(t, 0.5, TaskProgress(task))
}

func TestTaskProgressIgnoresTaskStatusWhenSubTasksExist(t *testing.T) {
	task := &Task{
		Status:   StatusCompleted,
		SubTasks: []SubTask{{Completed: false}},
	}
	assert.Equal(t, 0.0, TaskProgress(task))
}
