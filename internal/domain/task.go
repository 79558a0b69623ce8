package domain

import "time"

// Task is a unit of work within a project. Completed is true exactly
// when Status is Done, and CompletedAt is set exactly when Completed.
type Task struct {
	ID          string
	ProjectID   string
	AssigneeID  *string
	Name        string
	Description string
	Priority    TaskPriority
	Status      TaskStatus
	Completed   bool
	CreatedAt   time.Time
	DueDate     *time.Time
	CompletedAt *time.Time
}
