// Package pipeline orchestrates résumé analysis and multi-source job search.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-critiquer/internal/aggregate"
	"github.com/jonathan/resume-critiquer/internal/jobsource"
	"github.com/jonathan/resume-critiquer/internal/llm"
	"github.com/jonathan/resume-critiquer/internal/sample"
	"github.com/jonathan/resume-critiquer/internal/skills"
	"github.com/jonathan/resume-critiquer/internal/types"
)

// PerSourceCap is the most records requested from any one source.
const PerSourceCap = 10

// Notice shown when live sources were configured but found nothing.
const emptySourcesNotice = "Job sources returned no results. Showing sample data, not real job postings."

// Searcher runs job searches across sources in priority order.
type Searcher struct {
	// Sources are tried strictly in order; unconfigured sources are skipped.
	Sources []jobsource.Source
	// Sample supplies fallback records when the sources produce none.
	Sample *sample.Generator
	// Client is used for skill extraction in SearchByResume.
	Client     llm.Client
	OnProgress ProgressCallback
}

// Search validates query, collects records from the configured sources and
// aggregates them. Sample data is used only when the sources produced no
// records at all; the result is then flagged with Sample and a notice.
func (s *Searcher) Search(ctx context.Context, query types.JobQuery) (types.JobResultSet, error) {
	query = query.Normalize()
	if err := query.Validate(); err != nil {
		return types.JobResultSet{}, fmt.Errorf("invalid job query: %w", err)
	}

	records, tried := s.collect(ctx, query)

	result := types.JobResultSet{}
	if len(records) == 0 {
		records = s.sampleRecords(query)
		result.Sample = true
		result.Notice = sample.Notice
		if tried > 0 {
			result.Notice = emptySourcesNotice
		}
		emit(s.OnProgress, CategorySearch, "sample", fmt.Sprintf("using %d sample records", len(records)))
	}

	set := aggregate.Aggregate(records)
	set.Sample = result.Sample
	set.Notice = result.Notice
	if set.Empty() {
		return set, &ExhaustionError{Query: query}
	}

	emit(s.OnProgress, CategorySearch, "aggregate", fmt.Sprintf("%d jobs after deduplication", set.Len()))
	return set, nil
}

// collect walks the sources with a running quota. The first source is asked
// for min(count, PerSourceCap); each later source runs only while the total
// is short and is asked for the shortfall, capped the same way.
func (s *Searcher) collect(ctx context.Context, query types.JobQuery) ([]types.JobRecord, int) {
	var (
		records []types.JobRecord
		tried   int
	)

	for _, src := range s.Sources {
		if !src.Configured() {
			continue
		}
		remaining := query.Count - len(records)
		if remaining <= 0 {
			break
		}
		limit := min(remaining, PerSourceCap)

		tried++
		emit(s.OnProgress, CategorySearch, src.Name(), fmt.Sprintf("requesting up to %d jobs", limit))

		found, err := src.Search(ctx, query, limit)
		if err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		records = append(records, found...)
	}

	return records, tried
}

func (s *Searcher) sampleRecords(query types.JobQuery) []types.JobRecord {
	gen := s.Sample
	if gen == nil {
		gen = sample.New()
	}
	return gen.Generate(query, query.Count)
}

// SearchByResume searches with a term built from the skills extracted from
// the session's résumé. query supplies location, count and job type.
func (s *Searcher) SearchByResume(ctx context.Context, session *types.Session, query types.JobQuery) (types.JobResultSet, []string, error) {
	text, err := resumeText(session)
	if err != nil {
		return types.JobResultSet{}, nil, err
	}

	emit(s.OnProgress, CategorySearch, "skills", "extracting skills from resume")
	extracted := skills.Extract(ctx, s.client(), text)
	if len(extracted) == 0 {
		return types.JobResultSet{}, extracted, &NoSkillsError{}
	}

	query.Term = skills.SearchTerm(extracted)
	set, err := s.Search(ctx, query)
	return set, extracted, err
}

func (s *Searcher) client() llm.Client {
	if s.Client == nil {
		return &llm.UnavailableClient{Reason: "no AI client configured"}
	}
	return s.Client
}
