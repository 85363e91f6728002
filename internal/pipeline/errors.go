package pipeline

import (
	"fmt"

	"github.com/jonathan/resume-critiquer/internal/types"
)

// ExhaustionError is returned when a search produced no records from any
// source, sample data included. It reads as "no jobs found", not a failure.
type ExhaustionError struct {
	Query types.JobQuery
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("no jobs found for %q in %s", e.Query.Term, e.Query.Location)
}

// NoSkillsError is returned by a résumé search when no skills could be
// extracted. The caller should ask for a manual search term.
type NoSkillsError struct{}

func (e *NoSkillsError) Error() string {
	return "could not extract skills from resume; try a manual search"
}
