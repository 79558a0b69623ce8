package content

import "github.com/rs/zerolog"

// CallEvent records metadata about a single text provider invocation.
type CallEvent struct {
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about provider calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes provider call events through a structured logger.
type LogObserver struct {
	log zerolog.Logger
}

// NewLogObserver creates an Observer that logs events to log.
func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	evt := o.log.Debug().
		Str("model", event.Model).
		Int64("latency_ms", event.LatencyMs).
		Bool("success", event.Success)
	if event.ErrorCode != "" {
		evt = evt.Str("error_code", event.ErrorCode)
	}
	evt.Msg("text_call")
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
