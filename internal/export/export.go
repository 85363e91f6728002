// Package export writes job result sets as CSV, XLSX or JSON.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-critiquer/internal/types"
)

// Format is an export file format.
type Format string

// Supported export formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatJSON:
		return "application/json"
	default:
		return "text/csv"
	}
}

// ParseFormat accepts a format name or a file extension, with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported export format %q (expected csv, xlsx or json)", s)
}

// FormatForPath picks a format from a file name's extension.
func FormatForPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("output path %q has no extension", path)
	}
	return ParseFormat(ext)
}

// Write writes set to w in the given format.
func Write(w io.Writer, format Format, set *types.JobResultSet) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, set)
	case FormatXLSX:
		return WriteXLSX(w, set)
	case FormatJSON:
		return WriteJSON(w, set)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// WriteFile writes set to path, choosing the format from the extension.
func WriteFile(path string, set *types.JobResultSet) (Format, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return "", err
	}
	return format, WriteFileAs(path, format, set)
}

// WriteFileAs writes set to path in the given format regardless of extension.
func WriteFileAs(path string, format Format, set *types.JobResultSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, format, set); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func records(set *types.JobResultSet) []types.JobRecord {
	if set == nil || set.Records == nil {
		return []types.JobRecord{}
	}
	return set.Records
}
