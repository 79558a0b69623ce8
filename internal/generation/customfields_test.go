package generation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/datawhale/worksim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCustomFields_EmptyProjects(t *testing.T) {
	g := testContext(testConfig())
	fields, err := GenerateCustomFields(g, nil)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestGenerateCustomFields_PerProjectPool(t *testing.T) {
	g := testContext(testConfig())
	org, err := GenerateOrganization(g)
	require.NoError(t, err)
	teams, err := GenerateTeams(g, org)
	require.NoError(t, err)
	projects, err := GenerateProjects(context.Background(), g, teams)
	require.NoError(t, err)

	fields, err := GenerateCustomFields(g, projects)
	require.NoError(t, err)
	require.NotEmpty(t, fields)

	perProject := map[string]map[string]bool{}
	for _, f := range fields {
		if perProject[f.ProjectID] == nil {
			perProject[f.ProjectID] = map[string]bool{}
		}
		require.False(t, perProject[f.ProjectID][f.Name],
			"field %q duplicated within project", f.Name)
		perProject[f.ProjectID][f.Name] = true

		switch f.Type {
		case domain.FieldEnum:
			require.NotNil(t, f.PossibleValues, "enum field %q without values", f.Name)
			var values []string
			require.NoError(t, json.Unmarshal([]byte(*f.PossibleValues), &values))
			assert.NotEmpty(t, values)
		case domain.FieldNumber, domain.FieldText:
			assert.Nil(t, f.PossibleValues, "non-enum field %q carries values", f.Name)
		default:
			t.Fatalf("unexpected field type %q", f.Type)
		}
	}

	for projectID, set := range perProject {
		assert.GreaterOrEqual(t, len(set), 2, "project %s", projectID)
		assert.LessOrEqual(t, len(set), 5, "project %s", projectID)
	}
}
