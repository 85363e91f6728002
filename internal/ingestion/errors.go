package ingestion

import "fmt"

// ExtractionError is returned when a document cannot be decoded
type ExtractionError struct {
	MediaType string
	Message   string
	Cause     error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed (%s): %s: %v", e.MediaType, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed (%s): %s", e.MediaType, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ContentError is returned when a document decodes to no usable text.
// The caller must ask for a new upload; retrying will not help.
type ContentError struct {
	Message string
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content error: %s", e.Message)
}
