package generation

import "errors"

var (
	// ErrInvalidDistribution indicates a weighted choice over an empty
	// distribution or one containing a non-positive weight.
	ErrInvalidDistribution = errors.New("invalid weight distribution")

	// ErrConfig indicates an unusable run configuration (empty catalog,
	// non-positive cap or count range). Fatal before any record is emitted.
	ErrConfig = errors.New("invalid generation config")

	// ErrIntegrity indicates a phase was asked to reference parents that
	// have not been materialized yet. This is a topological-order bug in
	// the caller and is never retried.
	ErrIntegrity = errors.New("generation order violated")
)
