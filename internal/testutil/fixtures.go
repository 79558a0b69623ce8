package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/datawhale/worksim/internal/domain"
)

// Day builds a day-granular UTC date, the resolution all generated
// timestamps use.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectCreatedAt(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.CreatedAt = d
		p.StartDate = d
	}
}

func WithDepartment(dept string) ProjectOption {
	return func(p *domain.Project) {
		p.Department = dept
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:         "proj_" + uuid.New().String(),
		TeamID:     "team_" + uuid.New().String(),
		Department: "Engineering",
		Name:       name,
		Status:     domain.ProjectActive,
		StartDate:  Day(2023, time.March, 1),
		CreatedAt:  Day(2023, time.February, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
		t.Completed = s == domain.TaskDone
	}
}

func WithTaskCreatedAt(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = d
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithAssignee(userID string) TaskOption {
	return func(t *domain.Task) {
		t.AssigneeID = &userID
	}
}

func NewTestTask(name string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        "task_" + uuid.New().String(),
		ProjectID: "proj_" + uuid.New().String(),
		Name:      name,
		Priority:  domain.PriorityMedium,
		Status:    domain.TaskTodo,
		CreatedAt: Day(2023, time.April, 10),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestUser(name string) *domain.User {
	return &domain.User{
		ID:       "user_" + uuid.New().String(),
		TeamID:   "team_" + uuid.New().String(),
		Name:     name,
		Email:    "test.user@example.io",
		Role:     "Backend Developer",
		IsActive: true,
		JoinedAt: Day(2022, time.June, 15),
	}
}
