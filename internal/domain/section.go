package domain

import "time"

// Section is a workflow column within a project. Position is a dense
// 1-based sequence per project.
type Section struct {
	ID        string
	ProjectID string
	Name      string
	Position  int
	CreatedAt time.Time
}
