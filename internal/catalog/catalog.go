// Package catalog supplies the static vocabularies a run draws from:
// departments, company names and person identities. The lists are fixed so
// two runs with the same seed see the same vocabulary.
package catalog

// Static is the built-in vocabulary catalog.
type Static struct{}

// NewStatic returns the built-in catalog.
func NewStatic() *Static {
	return &Static{}
}

var departments = []string{
	"Engineering",
	"Design",
	"Marketing",
	"Sales",
	"Customer Success",
	"Product",
	"HR",
	"Finance",
	"Support",
	"Operations",
}

// Departments returns the department vocabulary. Callers must not mutate
// the shared backing array, so a copy is returned.
func (*Static) Departments() []string {
	out := make([]string, len(departments))
	copy(out, departments)
	return out
}
