package generation

import (
	"context"
	"testing"

	"github.com/datawhale/worksim/internal/domain"
	"github.com/stretchr/testify/require"
)

type staticCatalog []string

func (c staticCatalog) Departments() []string { return c }

var testDepartments = staticCatalog{
	"Engineering", "Design", "Marketing", "Sales", "Customer Success",
	"Product", "HR", "Finance", "Support", "Operations",
}

// testConfig is a small configuration that keeps generator tests fast.
func testConfig() Config {
	return Config{
		CompanyName:    "DataWhale Technologies",
		Seed:           42,
		NumTeams:       6,
		TotalUsers:     60,
		TotalTasks:     400,
		NumTags:        12,
		MaxTagsPerTask: 3,
	}
}

func testContext(cfg Config) *Context {
	return NewContext(cfg, testDepartments, nil, nil)
}

// generateThrough runs the generation phases needed to obtain parents for
// deeper phases, sharing one context the way the pipeline does.
func generateThrough(t *testing.T, g *Context) ([]*domain.Team, []*domain.User, []*domain.Project, []*domain.Task) {
	t.Helper()
	ctx := context.Background()

	org, err := GenerateOrganization(g)
	require.NoError(t, err)
	teams, err := GenerateTeams(g, org)
	require.NoError(t, err)
	users, err := GenerateUsers(g, teams)
	require.NoError(t, err)
	projects, err := GenerateProjects(ctx, g, teams)
	require.NoError(t, err)
	tasks, err := GenerateTasks(ctx, g, projects, users)
	require.NoError(t, err)
	return teams, users, projects, tasks
}
