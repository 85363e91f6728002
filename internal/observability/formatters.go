// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/jonathan/resume-critiquer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxCellWidth bounds a job table cell
	maxCellWidth = 40
)

// Printer handles formatted output for CLI results
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to width runes, ending in "..." when cut.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// wrap breaks line into pieces of at most width runes, preferring spaces.
func wrap(line string, width int) []string {
	var out []string
	for utf8.RuneCountInString(line) > width {
		runes := []rune(line)
		cut := width
		for i := width; i > width/2; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		out = append(out, strings.TrimRight(string(runes[:cut]), " "))
		line = strings.TrimLeft(string(runes[cut:]), " ")
	}
	return append(out, line)
}

// printBox prints a formatted box with a title and content. Long lines are
// wrapped so no content is lost.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(title, inner), inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, piece := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %s │\n", pad(piece, inner))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s to width runes; %-*s counts bytes, not runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// PrintCritique outputs the critique text under a role heading.
func (p *Printer) PrintCritique(critique, targetRole string) {
	if strings.TrimSpace(critique) == "" {
		return
	}
	title := "RESUME CRITIQUE"
	if role := strings.TrimSpace(targetRole); role != "" {
		title += " (" + strings.ToUpper(role) + ")"
	}
	p.printBox(title, strings.TrimSpace(critique))
}

// PrintRecommendations outputs the recommendation bullets.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(recs []string) {
	if len(recs) == 0 {
		fmt.Fprintln(p.out, "No recommendations available.")
		return
	}
	p.printBox("JOB SEARCH RECOMMENDATIONS", strings.Join(recs, "\n"))
}

// PrintSkills outputs the extracted skills and the search term they form.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSkills(skills []string, searchTerm string) {
	if len(skills) == 0 {
		fmt.Fprintln(p.out, "No skills could be extracted. Try a manual search term.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills:\n\n", len(skills)))
	for _, s := range skills {
		sb.WriteString(fmt.Sprintf("  • %s\n", s))
	}
	if searchTerm != "" {
		sb.WriteString(fmt.Sprintf("\nSearch term: %s", searchTerm))
	}
	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNotice outputs the sample-data notice, if any.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintNotice(set *types.JobResultSet) {
	if set == nil || !set.Sample {
		return
	}
	notice := set.Notice
	if notice == "" {
		notice = "Showing sample data, not real job postings."
	}
	fmt.Fprintf(p.out, "⚠ %s\n", notice)
}

// PrintJobs outputs the result set as an aligned table, preceded by the
// sample notice when the records are synthetic.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintJobs(set *types.JobResultSet) {
	if set.Len() == 0 {
		fmt.Fprintln(p.out, "No jobs found.")
		return
	}

	p.PrintNotice(set)
	fmt.Fprintf(p.out, "Found %d jobs\n\n", set.Len())

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(types.JobRecordHeader, "\t"))
	for _, r := range set.Records {
		cols := r.Columns()
		for i, c := range cols {
			// Apply links stay whole so they remain usable
			if types.JobRecordHeader[i] != "Apply Link" {
				cols[i] = truncate(c, maxCellWidth)
			}
		}
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	tw.Flush()
}
