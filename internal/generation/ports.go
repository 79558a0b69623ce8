package generation

import "context"

// Profile is an identity sketch supplied by a ProfileSource. The email is
// a plain derivation and need not be unique; the pipeline's uniqueness
// service resolves collisions.
type Profile struct {
	Name  string
	Email string
	Role  string
}

// Catalog supplies the department vocabulary for a run. The list must be
// non-empty and stable for the run; the pipeline fails fast with a
// configuration error otherwise.
type Catalog interface {
	Departments() []string
}

// ProfileSource supplies person identities, optionally scoped to a
// department.
type ProfileSource interface {
	Profile(company, department string) (Profile, error)
}

// TextSource produces free-form text for names and descriptions. It may
// fail or time out; generation steps swallow the failure and substitute a
// static fallback, so no text error ever reaches the pipeline's caller.
type TextSource interface {
	Text(ctx context.Context, prompt string) (string, error)
}
