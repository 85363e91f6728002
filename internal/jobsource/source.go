// Package jobsource adapts external job-search APIs to the shared JobRecord shape.
package jobsource

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-critiquer/internal/types"
)

// DefaultTimeout bounds every adapter request.
const DefaultTimeout = 10 * time.Second

// Credential placeholders shipped in example configuration. A credential equal
// to its placeholder is treated as absent.
const (
	RapidAPIKeyPlaceholder  = "your_rapidapi_key_here"
	AdzunaAppIDPlaceholder  = "your_adzuna_app_id_here"
	AdzunaAppKeyPlaceholder = "your_adzuna_app_key_here"
)

// notAvailable stands in for a missing provider field.
const notAvailable = "N/A"

// Source is one external job-search provider.
type Source interface {
	// Name identifies the provider in logs and on records.
	Name() string
	// Configured reports whether the required credentials are present.
	Configured() bool
	// Search returns at most limit records for query. Failures are *AdapterError.
	Search(ctx context.Context, query types.JobQuery, limit int) ([]types.JobRecord, error)
}

// AdapterError represents a failed provider call. It is logged by the
// dispatcher and never propagated past it.
type AdapterError struct {
	Source  string
	Message string
	Cause   error
}

func (e *AdapterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

func (e *AdapterError) Unwrap() error {
	return e.Cause
}

// CredentialSet reports whether value is a usable credential: non-empty and
// not the example placeholder.
func CredentialSet(value, placeholder string) bool {
	value = strings.TrimSpace(value)
	return value != "" && value != placeholder
}

// mapJobType translates a job-type filter through a provider vocabulary.
// Any and unmapped types return "", meaning no filter.
func mapJobType(jobType types.JobType, vocabulary map[string]string) string {
	if jobType.IsAny() {
		return ""
	}
	return vocabulary[strings.ToLower(string(jobType))]
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

// amount decodes a salary given as a JSON number or numeric string.
// Unparsable values decode to zero, which formats as absent.
type amount float64

func (a *amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f = 0
	}
	*a = amount(f)
	return nil
}

func (a *amount) float() *float64 {
	if a == nil {
		return nil
	}
	f := float64(*a)
	return &f
}
