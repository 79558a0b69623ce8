package domain

import "time"

// Comment is a user-authored note on a task.
type Comment struct {
	ID        string
	TaskID    string
	UserID    string
	Text      string
	CreatedAt time.Time
	IsEdited  bool
}
