package generation

import (
	"github.com/datawhale/worksim/internal/domain"
)

// Workflow column templates, selected by the owning project's department.
// Section names are always a prefix of the chosen template so column order
// stays meaningful.
var (
	defaultSections = []string{
		"Backlog", "To Do", "In Progress", "In Review", "Done",
	}
	engineeringSections = []string{
		"Backlog", "Sprint", "In Progress", "Testing", "Review", "Released",
	}
	creativeSections = []string{
		"Planning", "Design", "In Progress", "Review", "Published",
	}
)

func sectionTemplate(department string) []string {
	switch department {
	case "Engineering", "Product":
		return engineeringSections
	case "Marketing", "Design":
		return creativeSections
	default:
		return defaultSections
	}
}

func sectionCount(g *Context, department string) int {
	switch department {
	case "Engineering", "Product":
		return g.Rand.Between(5, 6)
	case "Marketing", "Design":
		return g.Rand.Between(4, 5)
	default:
		return g.Rand.Between(3, 5)
	}
}

// GenerateSections materializes workflow sections for each project with a
// dense 1..N position sequence. Section creation dates coincide with the
// project's own creation date.
func GenerateSections(g *Context, projects []*domain.Project) ([]*domain.Section, error) {
	if len(projects) == 0 {
		return nil, nil
	}

	g.reseedPhase()

	var sections []*domain.Section
	for _, project := range projects {
		template := sectionTemplate(project.Department)
		count := sectionCount(g, project.Department)
		if count > len(template) {
			count = len(template)
		}

		for idx, name := range template[:count] {
			sections = append(sections, &domain.Section{
				ID:        NewID(g.Rand, "sec"),
				ProjectID: project.ID,
				Name:      name,
				Position:  idx + 1,
				CreatedAt: project.CreatedAt,
			})
		}
	}
	return sections, nil
}
