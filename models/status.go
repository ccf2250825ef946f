package models

// Canonical status vocabulary shared by projects and tasks.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Client statuses
const (
	ClientActive   = "active"
	ClientInactive = "inactive"
)

// Task priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Statuses returns the valid project/task status values.
func Statuses() []string {
	return []string{StatusPending, StatusInProgress, StatusCompleted}
}

// Priorities returns the valid task priority values.
func Priorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// ClientStatuses returns the valid client status values.
func ClientStatuses() []string {
	return []string{ClientActive, ClientInactive}
}

// TaskProgress reports the fraction of a task's subtasks that are completed,
// in the range [0, 1]. A task with no subtasks reports 1 when the task itself
// is completed and 0 otherwise.
func TaskProgress(task *Task) float64 {
	if len(task.SubTasks) == 0 {
		if task.Status == StatusCompleted {
			return 1
		}
		return 0
	}
	var done int
	for _, st := range task.SubTasks {
		if st.Completed {
			done++
		}
	}
	return float64(done) / float64(len(task.SubTasks))
}
