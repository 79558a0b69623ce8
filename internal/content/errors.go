package content

import "errors"

var (
	// ErrUnavailable indicates the Ollama server is unreachable.
	ErrUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the text request exceeded the configured timeout.
	ErrTimeout = errors.New("text request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("text retry attempts exhausted")
)
