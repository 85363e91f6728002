// Package sample generates synthetic job records for when no job source is usable.
package sample

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/resume-critiquer/internal/aggregate"
	"github.com/jonathan/resume-critiquer/internal/types"
)

// MaxRecords caps how many sample records one search produces.
const MaxRecords = 20

// Notice is attached to every sample result set.
const Notice = "Sample data, not real job postings. Configure RAPIDAPI_KEY or ADZUNA_APP_ID/ADZUNA_APP_KEY for live results."

const (
	salaryFloor = 60000
	salarySpan  = 90000 // bases fall in [60000, 150000)
	salaryBand  = 20000
	maxDaysAgo  = 7
)

// Companies used for sample records.
var Companies = []string{
	"Google", "Microsoft", "Amazon", "Apple", "Meta", "Netflix", "Tesla",
	"Spotify", "Airbnb", "Uber", "LinkedIn", "Twitter", "Adobe", "Salesforce",
	"Oracle", "IBM", "Intel", "NVIDIA", "Cisco", "VMware",
}

// TitleTemplates interpolate the search term with %s.
var TitleTemplates = []string{
	"Senior %s",
	"Junior %s",
	"%s Specialist",
	"Lead %s",
	"%s Manager",
	"%s Analyst",
	"%s Developer",
	"%s Engineer",
	"Principal %s",
	"%s Consultant",
}

// JobTypes are picked from when the query does not filter by type.
var JobTypes = []types.JobType{types.JobTypeFullTime, types.JobTypePartTime, types.JobTypeContract, types.JobTypeInternship}

// Sources are the provider names shown on sample records.
var Sources = []string{"LinkedIn", "Indeed", "ZipRecruiter", "Company Website"}

// Generator produces sample records. The zero value is not usable; call New or NewWithRand.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator seeded from the clock.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a generator using rng, for reproducible output in tests.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

type posting struct {
	title, company string
}

// Generate returns min(requested, MaxRecords) synthetic records for query.
// Each record has a distinct (title, company) pair so deduplication keeps
// them all. The record shape matches the real sources so downstream code is
// source-agnostic.
func (g *Generator) Generate(query types.JobQuery, requested int) []types.JobRecord {
	n := min(requested, MaxRecords)
	if n <= 0 {
		return []types.JobRecord{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	seen := make(map[posting]bool, n)
	records := make([]types.JobRecord, 0, n)
	for i := 0; i < n; i++ {
		var company, title string
		for {
			company = pick(g.rng, Companies)
			title = fmt.Sprintf(pick(g.rng, TitleTemplates), query.Term)
			if !seen[posting{title, company}] {
				break
			}
		}
		seen[posting{title, company}] = true

		jobType := query.JobType
		if jobType.IsAny() {
			jobType = pick(g.rng, JobTypes)
		}

		base := float64(salaryFloor + g.rng.Intn(salarySpan))
		top := base + salaryBand

		records = append(records, types.JobRecord{
			Title:      title,
			Company:    company,
			Location:   query.Location,
			JobType:    string(jobType),
			Salary:     aggregate.FormatSalaryRange(&base, &top, "yearly"),
			DatePosted: fmt.Sprintf("%d days ago", 1+g.rng.Intn(maxDaysAgo)),
			ApplyLink:  fmt.Sprintf("https://example.com/jobs/%s-%d", strings.ToLower(company), i),
			Source:     pick(g.rng, Sources),
		})
	}
	return records
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
