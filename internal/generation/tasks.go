package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/datawhale/worksim/internal/domain"
)

var taskPriorityWeights = map[string]int{
	string(domain.PriorityLow):      20,
	string(domain.PriorityMedium):   40,
	string(domain.PriorityHigh):     30,
	string(domain.PriorityCritical): 10,
}

var taskStatusWeights = map[string]int{
	string(domain.TaskTodo):       25,
	string(domain.TaskInProgress): 35,
	string(domain.TaskInReview):   20,
	string(domain.TaskDone):       20,
}

// Built-in task-name templates. Config.TaskPrompts overrides them.
// Placeholders are substituted with tech vocabulary at render time.
var defaultTaskPrompts = []string{
	"Implement {feature} improvements",
	"Fix edge cases in {component} handling",
	"Review {feature} rollout plan",
	"Refactor the {service} module",
	"Write tests for {functionality}",
	"Update documentation for {product}",
	"Investigate slow {component} queries",
	"Design the new {feature} flow",
	"Migrate {service} to the new stack",
	"Audit {functionality} permissions",
}

var techWords = []string{
	"authentication",
	"billing",
	"onboarding",
	"analytics",
	"dashboard",
	"notifications",
	"permissions",
	"search",
	"performance",
	"reporting",
}

var promptPlaceholders = []string{"feature", "product", "service", "component", "functionality"}

// renderPrompt substitutes every known placeholder with a random tech word.
func renderPrompt(s *Source, template string) string {
	text := template
	for _, key := range promptPlaceholders {
		text = strings.ReplaceAll(text, "{"+key+"}", pick(s, techWords))
	}
	return strings.TrimRight(strings.TrimSpace(text), ".")
}

// GenerateTasks materializes tasks across projects, respecting the global
// task cap. The cap is checked before every task: when it is reached the
// phase stops immediately and the remaining projects' quota is forfeited.
// A completed date exists exactly for Done tasks, and every date triple
// passes through Reconcile.
func GenerateTasks(ctx context.Context, g *Context, projects []*domain.Project, users []*domain.User) ([]*domain.Task, error) {
	if len(projects) == 0 {
		return nil, fmt.Errorf("%w: tasks generated before projects", ErrIntegrity)
	}

	g.reseedPhase()

	prompts := g.Cfg.TaskPrompts
	if len(prompts) == 0 {
		prompts = defaultTaskPrompts
	}

	base := g.Cfg.TotalTasks / len(projects)
	if base < 1 {
		base = 1
	}
	lo := base / 2
	if lo < 20 {
		lo = 20
	}
	hi := base * 2
	if hi > 150 {
		hi = 150
	}

	var tasks []*domain.Task
	for _, project := range projects {
		numTasks := g.Rand.Between(lo, hi)

		for i := 0; i < numTasks; i++ {
			if len(tasks) >= g.Cfg.TotalTasks {
				return tasks, nil
			}

			name := renderPrompt(g.Rand, pick(g.Rand, prompts))
			statusLabel, err := WeightedChoice(g.Rand, taskStatusWeights)
			if err != nil {
				return nil, err
			}
			priorityLabel, err := WeightedChoice(g.Rand, taskPriorityWeights)
			if err != nil {
				return nil, err
			}
			status := domain.TaskStatus(statusLabel)

			createdAt := g.Rand.DateBetween(workWindowStart, workWindowEnd)
			due := g.Rand.DateBetween(createdAt, horizonEnd)

			completed := status == domain.TaskDone
			var completedAt *time.Time
			if completed {
				c := g.Rand.DateBetween(due, horizonEnd)
				completedAt = &c
			}
			createdAt, duePtr, completedAt := reconcileDue(g, createdAt, due, completedAt)

			var assigneeID *string
			if len(users) > 0 && g.Rand.Bernoulli(0.8) {
				id := pick(g.Rand, users).ID
				assigneeID = &id
			}

			prompt := fmt.Sprintf(
				"Write a one-sentence task description for project %q about %q.",
				project.Name, name)

			tasks = append(tasks, &domain.Task{
				ID:          NewID(g.Rand, "task"),
				ProjectID:   project.ID,
				AssigneeID:  assigneeID,
				Name:        name,
				Description: g.textOrFallback(ctx, prompt, "Complete the task: "+name+"."),
				Priority:    domain.TaskPriority(priorityLabel),
				Status:      status,
				Completed:   completed,
				CreatedAt:   createdAt,
				DueDate:     duePtr,
				CompletedAt: completedAt,
			})
		}
	}
	return tasks, nil
}

// reconcileDue runs Reconcile with a required due date.
func reconcileDue(g *Context, created, due time.Time, completed *time.Time) (time.Time, *time.Time, *time.Time) {
	return Reconcile(g.Rand, created, &due, completed)
}
