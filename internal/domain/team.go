package domain

import "time"

// Team groups users under a department within an organization.
type Team struct {
	ID          string
	OrgID       string
	Name        string
	Department  string
	Description string
	CreatedAt   time.Time
}
