package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/datawhale/worksim/internal/domain"
)

var projectNamePool = []string{
	"Growth Analytics Platform",
	"Mobile Redesign Sprint",
	"Customer Portal",
	"Onboarding Revamp",
	"Marketing Automation Integration",
	"Internal API Gateway",
	"Security Audit 2024",
	"Employee Experience Dashboard",
	"Performance Reporting Tool",
	"Cloud Cost Optimizer",
}

var projectStatusWeights = map[string]int{
	string(domain.ProjectActive):     60,
	string(domain.ProjectCompleted):  25,
	string(domain.ProjectOnHold):     10,
	string(domain.ProjectNotStarted): 5,
}

var projectFallbackDescriptions = []string{
	"Build a scalable internal solution aligned with business objectives.",
	"Improve system reliability and user experience across teams.",
	"Deliver a cross-functional initiative supporting company growth.",
	"Modernize workflows and infrastructure for long-term scalability.",
}

// Per-team project fan-out range.
const (
	minProjectsPerTeam = 3
	maxProjectsPerTeam = 12
)

// GenerateProjects materializes 3-12 projects per team. An end date is
// attached only to statuses that carry one, and the created/end pair is
// run through Reconcile before the record is emitted.
func GenerateProjects(ctx context.Context, g *Context, teams []*domain.Team) ([]*domain.Project, error) {
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: projects generated before teams", ErrIntegrity)
	}

	g.reseedPhase()

	var projects []*domain.Project
	for _, team := range teams {
		numProjects := g.Rand.Between(minProjectsPerTeam, maxProjectsPerTeam)

		for i := 0; i < numProjects; i++ {
			name := pick(g.Rand, projectNamePool)
			statusLabel, err := WeightedChoice(g.Rand, projectStatusWeights)
			if err != nil {
				return nil, err
			}
			status := domain.ProjectStatus(statusLabel)

			createdAt := g.Rand.DateBetween(workWindowStart, workWindowEnd)
			startDate := g.Rand.DateBetween(createdAt, startDateEnd)

			var endDate *time.Time
			if status.HasEndDate() {
				end := g.Rand.DateBetween(startDate, horizonEnd)
				endDate = &end
			}
			_, endDate, _ = Reconcile(g.Rand, createdAt, endDate, nil)

			prompt := fmt.Sprintf(
				"Write a concise project description for a %s project named %q in a B2B SaaS company.",
				team.Department, name)

			projects = append(projects, &domain.Project{
				ID:          NewID(g.Rand, "proj"),
				TeamID:      team.ID,
				Department:  team.Department,
				Name:        name,
				Description: g.textOrFallback(ctx, prompt, pick(g.Rand, projectFallbackDescriptions)),
				Status:      status,
				StartDate:   startDate,
				EndDate:     endDate,
				CreatedAt:   createdAt,
			})
		}
	}
	return projects, nil
}
