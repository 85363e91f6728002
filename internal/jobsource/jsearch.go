package jobsource

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/resume-critiquer/internal/aggregate"
	"github.com/jonathan/resume-critiquer/internal/fetch"
	"github.com/jonathan/resume-critiquer/internal/types"
)

// JSearch defaults
const (
	JSearchName    = "JSearch API"
	JSearchURL     = "https://jsearch.p.rapidapi.com/search"
	JSearchAPIHost = "jsearch.p.rapidapi.com"
)

var jsearchEmploymentTypes = map[string]string{
	"full-time":  "FULLTIME",
	"part-time":  "PARTTIME",
	"contract":   "CONTRACTOR",
	"internship": "INTERN",
}

// JSearch searches the JSearch API on RapidAPI, keyed by a single API key header.
type JSearch struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// NewJSearch returns a JSearch adapter with production defaults.
func NewJSearch(apiKey string) *JSearch {
	return &JSearch{
		APIKey:  apiKey,
		BaseURL: JSearchURL,
		Timeout: DefaultTimeout,
	}
}

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

type jsearchJob struct {
	JobTitle          string  `json:"job_title"`
	EmployerName      string  `json:"employer_name"`
	JobCity           string  `json:"job_city"`
	JobState          string  `json:"job_state"`
	JobEmploymentType string  `json:"job_employment_type"`
	JobMinSalary      *amount `json:"job_min_salary"`
	JobMaxSalary      *amount `json:"job_max_salary"`
	JobSalaryPeriod   string  `json:"job_salary_period"`
	JobPostedAt       string  `json:"job_posted_at_datetime_utc"`
	JobApplyLink      string  `json:"job_apply_link"`
}

// Name returns the provider name used on records.
func (s *JSearch) Name() string { return JSearchName }

// Configured reports whether a non-placeholder API key is set.
func (s *JSearch) Configured() bool {
	return CredentialSet(s.APIKey, RapidAPIKeyPlaceholder)
}

// Search queries JSearch for "{term} {location}" posted within the last week.
func (s *JSearch) Search(ctx context.Context, query types.JobQuery, limit int) ([]types.JobRecord, error) {
	params := url.Values{}
	params.Set("query", query.Term+" "+query.Location)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("date_posted", "week")
	if employmentType := mapJobType(query.JobType, jsearchEmploymentTypes); employmentType != "" {
		params.Set("employment_types", employmentType)
	}

	opts := &fetch.Options{
		Timeout: s.Timeout,
		Query:   params,
		Client:  s.Client,
		Headers: map[string]string{
			"x-rapidapi-key":  s.APIKey,
			"x-rapidapi-host": JSearchAPIHost,
		},
	}

	var resp jsearchResponse
	if _, err := fetch.GetJSON(ctx, s.BaseURL, opts, &resp); err != nil {
		return nil, &AdapterError{Source: JSearchName, Message: "search request failed", Cause: err}
	}

	jobs := resp.Data
	if limit >= 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}

	records := make([]types.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		records = append(records, job.toRecord())
	}
	return records, nil
}

func (j jsearchJob) toRecord() types.JobRecord {
	return types.JobRecord{
		Title:      orNA(j.JobTitle),
		Company:    orNA(j.EmployerName),
		Location:   strings.Trim(j.JobCity+", "+j.JobState, ", "),
		JobType:    orNA(j.JobEmploymentType),
		Salary:     FormatJSearchSalary(j.JobMinSalary.float(), j.JobMaxSalary.float(), j.JobSalaryPeriod),
		DatePosted: orNA(j.JobPostedAt),
		ApplyLink:  orNA(j.JobApplyLink),
		Source:     JSearchName,
	}
}

// FormatJSearchSalary formats salary bounds as "$X - $Y per {period}".
// The period defaults to "year".
func FormatJSearchSalary(minSalary, maxSalary *float64, period string) string {
	period = strings.TrimSpace(period)
	if period == "" {
		period = "year"
	}
	return aggregate.FormatSalaryRange(minSalary, maxSalary, "per "+period)
}
