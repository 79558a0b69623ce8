package domain

import "time"

// User is a workspace member assigned to a team. Email addresses are
// unique across all users in a run.
type User struct {
	ID       string
	TeamID   string
	Name     string
	Email    string
	Role     string
	IsActive bool
	JoinedAt time.Time
}
