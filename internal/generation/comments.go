package generation

import (
	"context"
	"fmt"

	"github.com/datawhale/worksim/internal/domain"
)

var commentFallbacks = []string{
	"Let's revisit this after the review meeting.",
	"Great progress here!",
	"Need to confirm details with the client.",
	"I'll take this up tomorrow.",
	"Updated the spec doc for clarity.",
	"Ready for testing, please review.",
	"Merging changes now.",
	"Can someone verify the bug report?",
	"Good catch! Fixing it now.",
	"Need approval from design before proceeding.",
}

// GenerateComments materializes 1-6 comments for roughly 70% of tasks.
// A comment's timestamp is drawn inside its task's created/due window and
// reconciled against the task's creation date.
func GenerateComments(ctx context.Context, g *Context, tasks []*domain.Task, users []*domain.User) ([]*domain.Comment, error) {
	if len(tasks) == 0 || len(users) == 0 {
		return nil, nil
	}

	g.reseedPhase()

	var comments []*domain.Comment
	for _, task := range tasks {
		if !g.Rand.Bernoulli(0.7) {
			continue
		}
		if task.DueDate == nil {
			continue
		}

		numComments := g.Rand.Between(1, 6)
		for i := 0; i < numComments; i++ {
			author := pick(g.Rand, users)

			at := g.Rand.DateBetween(task.CreatedAt, *task.DueDate)
			_, atPtr, _ := Reconcile(g.Rand, task.CreatedAt, &at, nil)

			prompt := fmt.Sprintf(
				"Write a short one or two sentence comment about the task %q, reflecting realistic team collaboration.",
				task.Name)

			comments = append(comments, &domain.Comment{
				ID:        NewID(g.Rand, "com"),
				TaskID:    task.ID,
				UserID:    author.ID,
				Text:      g.textOrFallback(ctx, prompt, pick(g.Rand, commentFallbacks)),
				CreatedAt: *atPtr,
				IsEdited:  g.Rand.Bernoulli(0.2),
			})
		}
	}
	return comments, nil
}
