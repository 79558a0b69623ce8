package generation

import (
	"fmt"

	"github.com/datawhale/worksim/internal/domain"
)

// Department blurbs used verbatim for team descriptions. Departments
// outside this map get a generic sentence.
var departmentDescriptions = map[string]string{
	"Engineering":      "Responsible for building, maintaining, and scaling core product features.",
	"Design":           "Handles product design, UX research, and visual branding.",
	"Marketing":        "Drives growth through campaigns, content, and brand strategy.",
	"Sales":            "Manages customer acquisition, partnerships, and revenue growth.",
	"Customer Success": "Ensures customer satisfaction, retention, and onboarding.",
	"Product":          "Owns product strategy, roadmap, and cross-functional alignment.",
	"HR":               "Manages hiring, people operations, and company culture.",
	"Finance":          "Oversees budgeting, forecasting, and financial reporting.",
	"Support":          "Provides technical and customer support across products.",
	"Operations":       "Optimizes internal processes and business operations.",
}

// GenerateTeams materializes NumTeams teams under the organization, each
// assigned a department from the catalog and numbered within it.
func GenerateTeams(g *Context, org *domain.Organization) ([]*domain.Team, error) {
	if org == nil {
		return nil, fmt.Errorf("%w: teams generated before organization", ErrIntegrity)
	}

	departments := g.Catalog.Departments()
	if len(departments) == 0 {
		return nil, fmt.Errorf("%w: department catalog is empty", ErrConfig)
	}

	g.reseedPhase()

	teams := make([]*domain.Team, 0, g.Cfg.NumTeams)
	for i := 0; i < g.Cfg.NumTeams; i++ {
		department := pick(g.Rand, departments)
		g.deptCounts[department]++

		description, ok := departmentDescriptions[department]
		if !ok {
			description = fmt.Sprintf("Handles core responsibilities for the %s function.", department)
		}

		teams = append(teams, &domain.Team{
			ID:          NewID(g.Rand, "team"),
			OrgID:       org.ID,
			Name:        fmt.Sprintf("%s Team %d", department, g.deptCounts[department]),
			Department:  department,
			Description: description,
			CreatedAt:   g.Rand.DateBetween(teamWindowStart, teamWindowEnd),
		})
	}
	return teams, nil
}
