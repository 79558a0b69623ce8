package generation

import (
	"fmt"
	"strings"

	"github.com/datawhale/worksim/internal/domain"
)

// fallbackNames backs user generation when the profile source fails.
var fallbackNames = []string{
	"Alex Morgan", "Jordan Lee", "Sam Rivera", "Casey Brooks",
	"Taylor Quinn", "Jamie Chen", "Riley Novak", "Drew Patel",
}

// GenerateUsers materializes users distributed across teams. Each team
// gets its proportional share of the user total plus a -10%..+20% size
// variation; the combined collection is shuffled and truncated to the
// configured total so per-team size bias does not survive the cap.
// Email uniqueness is enforced globally across the run.
func GenerateUsers(g *Context, teams []*domain.Team) ([]*domain.User, error) {
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: users generated before teams", ErrIntegrity)
	}

	g.reseedPhase()

	baseSize := g.Cfg.TotalUsers / len(teams)
	remainder := g.Cfg.TotalUsers % len(teams)

	var users []*domain.User
	for idx, team := range teams {
		teamSize := baseSize
		if idx < remainder {
			teamSize++
		}
		variation := int(float64(teamSize) * (g.Rand.Float64()*0.3 - 0.1))
		teamSize += variation
		if teamSize < 1 {
			teamSize = 1
		}

		for i := 0; i < teamSize; i++ {
			profile := g.userProfile(team.Department)
			users = append(users, &domain.User{
				ID:       NewID(g.Rand, "user"),
				TeamID:   team.ID,
				Name:     profile.Name,
				Email:    DedupeEmail(profile.Email, g.SeenEmails),
				Role:     profile.Role,
				IsActive: g.Rand.Bernoulli(0.9),
				JoinedAt: g.Rand.DateBetween(userWindowStart, userWindowEnd),
			})
		}
	}

	// Diffuse per-team ordering bias before applying the global cap.
	shuffle(g.Rand, users)
	if len(users) > g.Cfg.TotalUsers {
		users = users[:g.Cfg.TotalUsers]
	}
	return users, nil
}

// userProfile asks the profile source for an identity and synthesizes a
// plain one locally when the source is missing or fails.
func (g *Context) userProfile(department string) Profile {
	if g.Profiles != nil {
		profile, err := g.Profiles.Profile(g.Cfg.CompanyName, department)
		if err == nil && profile.Name != "" && profile.Email != "" {
			return profile
		}
	}

	name := pick(g.Rand, fallbackNames)
	local := strings.ReplaceAll(strings.ToLower(name), " ", ".")
	return Profile{
		Name:  name,
		Email: local + "@" + domain.EmailDomain(g.Cfg.CompanyName),
		Role:  department + " Specialist",
	}
}
