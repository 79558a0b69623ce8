package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrganization_Fields(t *testing.T) {
	g := testContext(testConfig())

	org, err := GenerateOrganization(g)
	require.NoError(t, err)

	assert.Equal(t, "DataWhale Technologies", org.Name)
	assert.Equal(t, "datawhaletechnologies.io", org.Domain)
	assert.Contains(t, orgIndustryWeights, org.Industry)
	assert.Contains(t, orgHeadquarters, org.Headquarters)
	assert.GreaterOrEqual(t, org.Size, 5000)
	assert.LessOrEqual(t, org.Size, 10000)
	assert.False(t, org.CreatedAt.Before(orgWindowStart))
	assert.False(t, org.CreatedAt.After(orgWindowEnd))
	assert.NotEmpty(t, org.Description)
	assert.Regexp(t, `^org_`, org.ID)
}

func TestGenerateOrganization_Deterministic(t *testing.T) {
	a, err := GenerateOrganization(testContext(testConfig()))
	require.NoError(t, err)
	b, err := GenerateOrganization(testContext(testConfig()))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateOrganization_SeedChangesOutput(t *testing.T) {
	cfg := testConfig()
	a, err := GenerateOrganization(testContext(cfg))
	require.NoError(t, err)

	cfg.Seed = 43
	b, err := GenerateOrganization(testContext(cfg))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}
