package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-critiquer/internal/aggregate"
	"github.com/jonathan/resume-critiquer/internal/export"
	"github.com/jonathan/resume-critiquer/internal/observability"
	"github.com/jonathan/resume-critiquer/internal/pipeline"
	"github.com/jonathan/resume-critiquer/internal/sample"
	"github.com/jonathan/resume-critiquer/internal/skills"
	"github.com/jonathan/resume-critiquer/internal/types"
)

var (
	searchTerm     string
	searchFile     string
	searchLocation string
	searchCount    int
	searchType     string
	searchFormat   string
	searchOut      string
	searchSource   string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job boards by keyword or by resume skills",
	Long: `Search JSearch and Adzuna for job postings, falling back to clearly labelled
sample data when no source is configured or none returns results.

Provide either --term for a manual search, or --file to search with the
skills extracted from a resume.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchTerm, "term", "t", "", "Search keywords")
	searchCmd.Flags().StringVarP(&searchFile, "file", "f", "", "Search with skills extracted from this resume")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Location (default from config, else United States)")
	searchCmd.Flags().IntVarP(&searchCount, "count", "n", 0, "Number of results, 10-50 (default from config, else 20)")
	searchCmd.Flags().StringVar(&searchType, "type", "", "Job type: Any, Full-time, Part-time, Contract, Internship")
	searchCmd.Flags().StringVar(&searchFormat, "format", "", "Export format: csv, xlsx or json (default from --out extension)")
	searchCmd.Flags().StringVarP(&searchOut, "out", "o", "", "Write results to this file instead of printing a table")
	searchCmd.Flags().StringVar(&searchSource, "source", "", "Only show jobs from this source (e.g. JSearch, Adzuna)")
	searchCmd.MarkFlagsMutuallyExclusive("term", "file")
	searchCmd.MarkFlagsOneRequired("term", "file")

	rootCmd.AddCommand(searchCmd)
}

// searchQuery builds the query from config defaults and flag overrides
func searchQuery() (types.JobQuery, error) {
	query := appConfig.Query(searchTerm)
	if searchLocation != "" {
		query.Location = searchLocation
	}
	if searchCount != 0 {
		query.Count = searchCount
	}
	if searchType != "" {
		jobType, err := types.ParseJobType(searchType)
		if err != nil {
			return query, err
		}
		query.JobType = jobType
	}
	return query, nil
}

func runSearch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	query, err := searchQuery()
	if err != nil {
		return err
	}

	var format export.Format
	if searchFormat != "" {
		if format, err = export.ParseFormat(searchFormat); err != nil {
			return err
		}
		if format == export.FormatXLSX && searchOut == "" {
			return fmt.Errorf("xlsx output requires --out")
		}
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	searcher := &pipeline.Searcher{
		Sources:    appConfig.Sources(),
		Sample:     sample.New(),
		Client:     client,
		OnProgress: progress(cmd.ErrOrStderr()),
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())

	var set types.JobResultSet
	if searchFile != "" {
		session, _, loadErr := loadResume(searchFile)
		if loadErr != nil {
			return loadErr
		}
		var extracted []string
		set, extracted, err = searcher.SearchByResume(ctx, session, query)
		if len(extracted) > 0 {
			printer.PrintSkills(extracted, skills.SearchTerm(extracted))
		}
	} else {
		set, err = searcher.Search(ctx, query)
	}

	var exhausted *pipeline.ExhaustionError
	var noSkills *pipeline.NoSkillsError
	switch {
	case errors.As(err, &exhausted):
		fmt.Fprintf(cmd.OutOrStdout(), "No jobs found for %q in %s.\n", exhausted.Query.Term, exhausted.Query.Location)
		return nil
	case errors.As(err, &noSkills):
		return fmt.Errorf("%w (use --term)", err)
	case err != nil:
		return err
	}

	if searchSource != "" {
		set = aggregate.Filter(set, aggregate.BySource(searchSource))
	}
	return writeResults(cmd, printer, &set, format)
}

func writeResults(cmd *cobra.Command, printer *observability.Printer, set *types.JobResultSet, format export.Format) error {
	switch {
	case searchOut != "":
		var err error
		if format == "" {
			_, err = export.WriteFile(searchOut, set)
		} else {
			err = export.WriteFileAs(searchOut, format, set)
		}
		if err != nil {
			return err
		}
		printer.PrintNotice(set)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d jobs to %s\n", set.Len(), searchOut)
		return nil
	case format != "":
		return export.Write(cmd.OutOrStdout(), format, set)
	default:
		printer.PrintJobs(set)
		return nil
	}
}
