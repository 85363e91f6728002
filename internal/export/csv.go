package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jonathan/resume-critiquer/internal/types"
)

// WriteCSV writes the header row followed by one row per record.
func WriteCSV(w io.Writer, set *types.JobResultSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.JobRecordHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records(set) {
		if err := cw.Write(r.Columns()); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
