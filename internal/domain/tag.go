package domain

// Tag is a global label. Names are unique within the generated pool.
type Tag struct {
	ID    string
	Name  string
	Color string
}

// TaskTag links a task to a tag. Pure association, no payload.
type TaskTag struct {
	TaskID string
	TagID  string
}
