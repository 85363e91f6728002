package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/resume-critiquer/internal/schemas"
	"github.com/jonathan/resume-critiquer/internal/types"
)

// Document is the JSON export shape.
type Document struct {
	Count   int               `json:"count"`
	Sample  bool              `json:"sample"`
	Notice  string            `json:"notice,omitempty"`
	Records []types.JobRecord `json:"records"`
}

// NewDocument wraps set for JSON output.
func NewDocument(set *types.JobResultSet) Document {
	doc := Document{Records: records(set)}
	doc.Count = len(doc.Records)
	if set != nil {
		doc.Sample = set.Sample
		doc.Notice = set.Notice
	}
	return doc
}

// WriteJSON writes set as an indented document after checking it against
// the job results schema.
func WriteJSON(w io.Writer, set *types.JobResultSet) error {
	data, err := json.MarshalIndent(NewDocument(set), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job results: %w", err)
	}
	if err := schemas.Validate(schemas.JobResults, data); err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write job results: %w", err)
	}
	return nil
}
