package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-critiquer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintCritique(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCritique("1. Overall Assessment: strong backend profile\n2. Key Strengths: Go", "Backend Engineer")
	output := buf.String()

	assert.Contains(t, output, "RESUME CRITIQUE (BACKEND ENGINEER)")
	assert.Contains(t, output, "Overall Assessment")
	assert.Contains(t, output, "Key Strengths: Go")
}

func TestPrintCritique_WrapsLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := strings.Repeat("word ", 40) + "ending"
	p.PrintCritique(long, "")

	output := buf.String()
	assert.Contains(t, output, "ending")
	assert.NotContains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), "line %q", line)
	}
}

func TestPrintCritique_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCritique("  ", "")
	assert.Empty(t, buf.String())
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]string{"• Apply to fintech", "• Highlight AWS"})
	assert.Contains(t, buf.String(), "JOB SEARCH RECOMMENDATIONS")
	assert.Contains(t, buf.String(), "• Highlight AWS")

	buf.Reset()
	p.PrintRecommendations(nil)
	assert.Contains(t, buf.String(), "No recommendations available")
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills([]string{"Python", "AWS"}, "Python OR AWS")
	output := buf.String()

	assert.Contains(t, output, "Found 2 skills")
	assert.Contains(t, output, "• Python")
	assert.Contains(t, output, "Search term: Python OR AWS")

	buf.Reset()
	p.PrintSkills(nil, "")
	assert.Contains(t, buf.String(), "manual search")
}

func TestPrintJobs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	link := "https://example.com/jobs/" + strings.Repeat("x", 60)
	set := &types.JobResultSet{Records: []types.JobRecord{{
		Title:      strings.Repeat("Very Long Title ", 5),
		Company:    "Acme",
		Location:   "Austin, TX",
		JobType:    "FULLTIME",
		Salary:     "$100,000/year",
		DatePosted: "2024-05-01",
		ApplyLink:  link,
		Source:     "JSearch",
	}}}

	p.PrintJobs(set)
	output := buf.String()

	assert.Contains(t, output, "Found 1 jobs")
	assert.Contains(t, output, "Job Title")
	assert.Contains(t, output, "Acme")
	assert.Contains(t, output, link)
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, "⚠")
}

func TestPrintJobs_SampleNotice(t *testing.T) {
	var buf bytes.Buffer
	set := &types.JobResultSet{
		Records: []types.JobRecord{{Title: "Go Developer", Source: "Indeed"}},
		Sample:  true,
		Notice:  "Showing sample data",
	}

	NewPrinter(&buf).PrintJobs(set)
	assert.Contains(t, buf.String(), "⚠ Showing sample data")
}

func TestPrintJobs_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobs(&types.JobResultSet{})
	assert.Contains(t, buf.String(), "No jobs found")
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"short"}, wrap("short", 10))
	assert.Equal(t, []string{"hello", "world"}, wrap("hello world", 8))
	assert.Equal(t, []string{"abcdefgh", "ij"}, wrap("abcdefghij", 8))
}
