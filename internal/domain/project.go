package domain

import "time"

// Project is a team-owned body of work. EndDate is present only for
// statuses that carry one (see ProjectStatus.HasEndDate).
type Project struct {
	ID          string
	TeamID      string
	Department  string
	Name        string
	Description string
	Status      ProjectStatus
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
}
