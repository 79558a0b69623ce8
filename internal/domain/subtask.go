package domain

import "time"

// Subtask is a child work item of a task. Its dates fall inside the
// parent task's created/due window.
type Subtask struct {
	ID           string
	ParentTaskID string
	AssigneeID   *string
	Name         string
	Description  string
	Status       TaskStatus
	Completed    bool
	CreatedAt    time.Time
	DueDate      *time.Time
	CompletedAt  *time.Time
}
