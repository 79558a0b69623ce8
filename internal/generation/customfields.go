package generation

import (
	"encoding/json"

	"github.com/datawhale/worksim/internal/domain"
)

type fieldDef struct {
	Name   string
	Type   domain.FieldType
	Values []string
}

var customFieldPool = []fieldDef{
	{Name: "Effort Estimate", Type: domain.FieldNumber},
	{Name: "Customer Segment", Type: domain.FieldEnum, Values: []string{"Enterprise", "SMB", "Startup"}},
	{Name: "Priority Level", Type: domain.FieldEnum, Values: []string{"Low", "Medium", "High", "Critical"}},
	{Name: "Confidence Score", Type: domain.FieldNumber},
	{Name: "Sprint Number", Type: domain.FieldNumber},
	{Name: "Risk Category", Type: domain.FieldEnum, Values: []string{"Low", "Medium", "High"}},
	{Name: "Team Feedback", Type: domain.FieldText},
	{Name: "Release Phase", Type: domain.FieldEnum, Values: []string{"Alpha", "Beta", "GA"}},
	{Name: "Customer Impact", Type: domain.FieldEnum, Values: []string{"Low", "Medium", "High"}},
	{Name: "Budget Allocation", Type: domain.FieldNumber},
}

// GenerateCustomFields materializes 2-5 field definitions per project,
// sampled from the shared pool. Enum fields carry their legal values as a
// JSON-serialized list.
func GenerateCustomFields(g *Context, projects []*domain.Project) ([]*domain.CustomField, error) {
	if len(projects) == 0 {
		return nil, nil
	}

	g.reseedPhase()

	var fields []*domain.CustomField
	for _, project := range projects {
		numFields := g.Rand.Between(2, 5)

		for _, def := range sampleN(g.Rand, customFieldPool, numFields) {
			var possibleValues *string
			if def.Values != nil {
				// Marshaling a static string slice cannot fail.
				raw, _ := json.Marshal(def.Values)
				serialized := string(raw)
				possibleValues = &serialized
			}

			fields = append(fields, &domain.CustomField{
				ID:             NewID(g.Rand, "cf"),
				ProjectID:      project.ID,
				Name:           def.Name,
				Type:           def.Type,
				PossibleValues: possibleValues,
			})
		}
	}
	return fields, nil
}
