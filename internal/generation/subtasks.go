package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/datawhale/worksim/internal/domain"
)

var subtaskStatusWeights = map[string]int{
	string(domain.TaskTodo):       35,
	string(domain.TaskInProgress): 30,
	string(domain.TaskDone):       35,
}

var subtaskNamePool = []string{
	"Write unit tests",
	"Review PR changes",
	"Document feature behavior",
	"Deploy to staging",
	"Conduct code review",
	"Fix bug reports",
	"Prepare release notes",
	"Sync with QA",
	"Validate integration",
}

// GenerateSubtasks materializes subtasks for roughly half of the tasks.
// Subtask dates live inside the parent's created/due window, a Done parent
// forces Done children and caps the fan-out at 2, and every date triple
// passes through Reconcile.
func GenerateSubtasks(ctx context.Context, g *Context, tasks []*domain.Task, users []*domain.User) ([]*domain.Subtask, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	g.reseedPhase()

	// Bernoulli gate: not every task grows subtasks.
	var eligible []*domain.Task
	for _, task := range tasks {
		if g.Rand.Bernoulli(0.5) {
			eligible = append(eligible, task)
		}
	}

	var subtasks []*domain.Subtask
	for _, parent := range eligible {
		if parent.DueDate == nil {
			continue
		}
		parentDone := parent.Status == domain.TaskDone

		maxSubtasks := 5
		if parentDone {
			maxSubtasks = 2
		}
		numSubtasks := g.Rand.Between(1, maxSubtasks)

		for i := 0; i < numSubtasks; i++ {
			var status domain.TaskStatus
			if parentDone {
				status = domain.TaskDone
			} else {
				label, err := WeightedChoice(g.Rand, subtaskStatusWeights)
				if err != nil {
					return nil, err
				}
				status = domain.TaskStatus(label)
			}

			createdAt := g.Rand.DateBetween(parent.CreatedAt, *parent.DueDate)
			due := g.Rand.DateBetween(createdAt, *parent.DueDate)

			completed := status == domain.TaskDone
			var completedAt *time.Time
			if completed {
				c := g.Rand.DateBetween(createdAt, due)
				completedAt = &c
			}
			createdAt, duePtr, completedAt := Reconcile(g.Rand, createdAt, &due, completedAt)

			var assigneeID *string
			if len(users) > 0 && g.Rand.Bernoulli(0.8) {
				id := pick(g.Rand, users).ID
				assigneeID = &id
			}

			name := pick(g.Rand, subtaskNamePool)
			prompt := fmt.Sprintf(
				"Write a short subtask description for %q related to parent task %q.",
				name, parent.Name)
			fallback := fmt.Sprintf("Subtask to %s for parent task: %s.", strings.ToLower(name), parent.Name)

			subtasks = append(subtasks, &domain.Subtask{
				ID:           NewID(g.Rand, "sub"),
				ParentTaskID: parent.ID,
				AssigneeID:   assigneeID,
				Name:         name,
				Description:  g.textOrFallback(ctx, prompt, fallback),
				Status:       status,
				Completed:    completed,
				CreatedAt:    createdAt,
				DueDate:      duePtr,
				CompletedAt:  completedAt,
			})
		}
	}
	return subtasks, nil
}
