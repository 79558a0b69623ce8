package domain

// CustomField is a project-level field definition. PossibleValues is a
// JSON-serialized list of legal values and is set only for enum fields.
type CustomField struct {
	ID             string
	ProjectID      string
	Name           string
	Type           FieldType
	PossibleValues *string
}
