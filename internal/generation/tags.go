package generation

import (
	"github.com/datawhale/worksim/internal/domain"
)

var tagColorPalette = []string{
	"red", "blue", "green", "yellow", "purple", "gray", "teal", "orange",
}

var tagNamePool = []string{
	"Backend", "Frontend", "Bug", "UI/UX",
	"Sprint 1", "Sprint 2", "Sprint 3",
	"Q1 Goals", "Q2 Goals",
	"Documentation", "Hotfix", "Urgent", "Testing", "Research", "Release",
	"Client Feedback", "Design Review", "Refactor", "API", "Performance",
	"Analytics", "Integration", "DevOps", "Security", "Product Launch",
	"Content", "SEO", "Infrastructure", "Scalability", "Reliability",
	"Monitoring", "Migration", "Compliance", "Accessibility", "Experiment",
	"Growth", "Churn Reduction", "User Feedback", "Automation", "Optimization",
}

// GenerateTags materializes the global tag pool. Names are sampled without
// replacement so the pool is unique; Config.Validate guarantees the
// requested count fits the available names.
func GenerateTags(g *Context) ([]*domain.Tag, error) {
	g.reseedPhase()

	names := sampleN(g.Rand, tagNamePool, g.Cfg.NumTags)
	tags := make([]*domain.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, &domain.Tag{
			ID:    NewID(g.Rand, "tag"),
			Name:  name,
			Color: pick(g.Rand, tagColorPalette),
		})
	}
	return tags, nil
}

// AssignTags links each task to 0-MaxTagsPerTask distinct tags.
func AssignTags(g *Context, tasks []*domain.Task, tags []*domain.Tag) []*domain.TaskTag {
	if len(tasks) == 0 || len(tags) == 0 {
		return nil
	}

	g.reseedPhase()

	var links []*domain.TaskTag
	for _, task := range tasks {
		numTags := g.Rand.Between(0, g.Cfg.MaxTagsPerTask)
		if numTags == 0 {
			continue
		}
		for _, tag := range sampleN(g.Rand, tags, numTags) {
			links = append(links, &domain.TaskTag{
				TaskID: task.ID,
				TagID:  tag.ID,
			})
		}
	}
	return links
}
