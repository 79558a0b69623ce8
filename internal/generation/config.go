package generation

import "fmt"

// Config is the immutable run configuration handed to the pipeline at
// start. Defaults mirror a mid-size SaaS workspace.
type Config struct {
	// CompanyName names the generated organization.
	CompanyName string

	// Seed is the master seed. Every phase reseeds the stream with it.
	Seed int64

	// NumTeams is the number of teams under the organization.
	NumTeams int

	// TotalUsers caps the global user collection after the final shuffle.
	TotalUsers int

	// TotalTasks is the hard global task cap. Generation stops exactly at
	// the cap; a project's unused quota is forfeited, not redistributed.
	TotalTasks int

	// NumTags is the size of the global tag pool.
	NumTags int

	// MaxTagsPerTask bounds the per-task tag fan-out.
	MaxTagsPerTask int

	// TaskPrompts optionally overrides the built-in task-name templates.
	// Templates may contain {feature}-style placeholders.
	TaskPrompts []string
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() Config {
	return Config{
		CompanyName:    "DataWhale Technologies",
		Seed:           42,
		NumTeams:       40,
		TotalUsers:     8000,
		TotalTasks:     20000,
		NumTags:        40,
		MaxTagsPerTask: 3,
	}
}

// Validate rejects configurations that cannot produce a consistent
// dataset. All violations wrap ErrConfig and abort the run before any
// record is emitted.
func (c Config) Validate() error {
	if c.CompanyName == "" {
		return fmt.Errorf("%w: company name is required", ErrConfig)
	}
	if c.NumTeams <= 0 {
		return fmt.Errorf("%w: team count must be positive, got %d", ErrConfig, c.NumTeams)
	}
	if c.TotalUsers <= 0 {
		return fmt.Errorf("%w: user total must be positive, got %d", ErrConfig, c.TotalUsers)
	}
	if c.TotalTasks <= 0 {
		return fmt.Errorf("%w: task cap must be positive, got %d", ErrConfig, c.TotalTasks)
	}
	if c.NumTags <= 0 {
		return fmt.Errorf("%w: tag count must be positive, got %d", ErrConfig, c.NumTags)
	}
	if c.NumTags > len(tagNamePool) {
		return fmt.Errorf("%w: tag count %d exceeds the %d unique tag names available",
			ErrConfig, c.NumTags, len(tagNamePool))
	}
	if c.MaxTagsPerTask < 0 {
		return fmt.Errorf("%w: max tags per task must be non-negative, got %d", ErrConfig, c.MaxTagsPerTask)
	}
	return nil
}
