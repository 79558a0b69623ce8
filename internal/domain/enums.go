package domain

type ProjectStatus string

const (
	ProjectActive     ProjectStatus = "Active"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectOnHold     ProjectStatus = "On Hold"
	ProjectNotStarted ProjectStatus = "Not Started"
)

// HasEndDate reports whether projects in this status carry an end date.
func (s ProjectStatus) HasEndDate() bool {
	return s == ProjectCompleted || s == ProjectActive
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskInReview   TaskStatus = "In Review"
	TaskDone       TaskStatus = "Done"
)

type TaskPriority string

const (
	PriorityLow      TaskPriority = "Low"
	PriorityMedium   TaskPriority = "Medium"
	PriorityHigh     TaskPriority = "High"
	PriorityCritical TaskPriority = "Critical"
)

type FieldType string

const (
	FieldNumber FieldType = "number"
	FieldText   FieldType = "text"
	FieldEnum   FieldType = "enum"
)
