package llm

import "fmt"

// UpstreamError represents a failed or empty completion from the AI service
type UpstreamError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *UpstreamError) Error() string {
	prefix := "completion failed"
	if e.Provider != "" {
		prefix = fmt.Sprintf("%s completion failed", e.Provider)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
