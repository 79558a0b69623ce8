package generation

import "time"

// PhaseEvent records the outcome of one completed generation phase.
type PhaseEvent struct {
	Phase   string
	Index   int // 1-based position in the run
	Total   int // total number of phases
	Records int
	Elapsed time.Duration
}

// Observer receives phase lifecycle events for progress reporting.
type Observer interface {
	PhaseStarted(phase string, index, total int)
	PhaseCompleted(event PhaseEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) PhaseStarted(string, int, int) {}
func (NoopObserver) PhaseCompleted(PhaseEvent)     {}
