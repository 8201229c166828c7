package sources

import "fmt"

// SourceUnavailableError represents a network, timeout, or non-200 failure
// from one external service. It is recovered locally by the aggregator and
// surfaced only as a non-fatal warning.
type SourceUnavailableError struct {
	Source  string
	Message string
	Cause   error
}

func (e *SourceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source %s unavailable: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("source %s unavailable: %s", e.Source, e.Message)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError represents an unexpected JSON shape from an
// external service. Handled identically to SourceUnavailableError.
type MalformedResponseError struct {
	Source  string
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source %s returned malformed response: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("source %s returned malformed response: %s", e.Source, e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
