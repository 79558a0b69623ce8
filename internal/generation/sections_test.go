package generation

import (
	"context"
	"testing"

	"github.com/datawhale/worksim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSections_EmptyProjects(t *testing.T) {
	g := testContext(testConfig())
	sections, err := GenerateSections(g, nil)
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestGenerateSections_TemplatePrefixAndPositions(t *testing.T) {
	g := testContext(testConfig())
	org, err := GenerateOrganization(g)
	require.NoError(t, err)
	teams, err := GenerateTeams(g, org)
	require.NoError(t, err)
	projects, err := GenerateProjects(context.Background(), g, teams)
	require.NoError(t, err)

	sections, err := GenerateSections(g, projects)
	require.NoError(t, err)
	require.NotEmpty(t, sections)

	byProject := map[string][]*domain.Section{}
	projectByID := map[string]*domain.Project{}
	for _, p := range projects {
		projectByID[p.ID] = p
	}
	for _, s := range sections {
		byProject[s.ProjectID] = append(byProject[s.ProjectID], s)
	}

	for projectID, list := range byProject {
		project := projectByID[projectID]
		require.NotNil(t, project)
		template := sectionTemplate(project.Department)

		require.LessOrEqual(t, len(list), len(template))
		for i, s := range list {
			// Names follow the template as an ordered prefix.
			assert.Equal(t, template[i], s.Name)
			assert.Equal(t, i+1, s.Position)
			assert.Equal(t, project.CreatedAt, s.CreatedAt)
		}
	}
}

func TestGenerateSections_EngineeringGetsEngineeringColumns(t *testing.T) {
	g := testContext(testConfig())
	project := &domain.Project{
		ID:         "proj_fixed",
		Department: "Engineering",
		CreatedAt:  day(2023, 3, 1),
	}

	sections, err := GenerateSections(g, []*domain.Project{project})
	require.NoError(t, err)
	require.NotEmpty(t, sections)

	assert.Equal(t, "Backlog", sections[0].Name)
	assert.GreaterOrEqual(t, len(sections), 5)
	assert.LessOrEqual(t, len(sections), 6)
}
