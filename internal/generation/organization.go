package generation

import (
	"github.com/datawhale/worksim/internal/domain"
)

// Industry distribution for the singleton organization, weighted toward
// software companies.
var orgIndustryWeights = map[string]int{
	"Software":   3,
	"Marketing":  1,
	"Finance":    1,
	"Education":  1,
	"Healthcare": 1,
	"E-commerce": 1,
}

var orgHeadquarters = []string{
	"San Francisco",
	"New York",
	"London",
	"Berlin",
	"Bangalore",
	"Toronto",
	"Singapore",
}

var orgDescriptions = []string{
	"A SaaS company focused on workflow analytics and automation.",
	"A technology-driven organization building collaborative productivity tools.",
	"A modern software company enabling teams to plan, track, and execute work.",
	"A cloud-based platform helping businesses streamline operations.",
}

// GenerateOrganization materializes the run's single root organization.
func GenerateOrganization(g *Context) (*domain.Organization, error) {
	g.reseedPhase()

	industry, err := WeightedChoice(g.Rand, orgIndustryWeights)
	if err != nil {
		return nil, err
	}

	return &domain.Organization{
		ID:           NewID(g.Rand, "org"),
		Name:         g.Cfg.CompanyName,
		Industry:     industry,
		Size:         g.Rand.Between(5000, 10000),
		CreatedAt:    g.Rand.DateBetween(orgWindowStart, orgWindowEnd),
		Description:  pick(g.Rand, orgDescriptions),
		Headquarters: pick(g.Rand, orgHeadquarters),
		Domain:       domain.EmailDomain(g.Cfg.CompanyName),
	}, nil
}
