package jobsource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-critiquer/internal/aggregate"
	"github.com/jonathan/resume-critiquer/internal/fetch"
	"github.com/jonathan/resume-critiquer/internal/types"
)

// Adzuna defaults
const (
	AdzunaName     = "Adzuna API"
	AdzunaBaseURL  = "https://api.adzuna.com/v1/api/jobs"
	adzunaPageSize = 20
)

var adzunaCategories = map[string]string{
	"full-time":  "permanent",
	"part-time":  "part_time",
	"contract":   "contract",
	"internship": "graduate",
}

// adzunaCountries is checked in order; the first substring match wins.
var adzunaCountries = []struct {
	needles []string
	code    string
}{
	{[]string{"uk", "united kingdom"}, "gb"},
	{[]string{"canada"}, "ca"},
	{[]string{"australia"}, "au"},
}

// Adzuna searches the Adzuna API, keyed by an app id and app key pair.
type Adzuna struct {
	AppID   string
	AppKey  string
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// NewAdzuna returns an Adzuna adapter with production defaults.
func NewAdzuna(appID, appKey string) *Adzuna {
	return &Adzuna{
		AppID:   appID,
		AppKey:  appKey,
		BaseURL: AdzunaBaseURL,
		Timeout: DefaultTimeout,
	}
}

type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

type adzunaResult struct {
	Title        string         `json:"title"`
	Company      adzunaCompany  `json:"company"`
	Location     adzunaLocation `json:"location"`
	ContractType string         `json:"contract_type"`
	SalaryMin    *amount        `json:"salary_min"`
	SalaryMax    *amount        `json:"salary_max"`
	Created      string         `json:"created"`
	RedirectURL  string         `json:"redirect_url"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

// Name returns the provider name used on records.
func (s *Adzuna) Name() string { return AdzunaName }

// Configured reports whether both credentials are set and not placeholders.
func (s *Adzuna) Configured() bool {
	return CredentialSet(s.AppID, AdzunaAppIDPlaceholder) && CredentialSet(s.AppKey, AdzunaAppKeyPlaceholder)
}

// Search queries the Adzuna country index chosen from the query location.
func (s *Adzuna) Search(ctx context.Context, query types.JobQuery, limit int) ([]types.JobRecord, error) {
	pageSize := limit
	if pageSize > adzunaPageSize {
		pageSize = adzunaPageSize
	}

	params := url.Values{}
	params.Set("app_id", s.AppID)
	params.Set("app_key", s.AppKey)
	params.Set("results_per_page", strconv.Itoa(pageSize))
	params.Set("what", query.Term)
	params.Set("where", query.Location)
	params.Set("sort_by", "date")
	if category := mapJobType(query.JobType, adzunaCategories); category != "" {
		params.Set("category", category)
	}

	endpoint := fmt.Sprintf("%s/%s/search/1", strings.TrimRight(s.BaseURL, "/"), CountryCode(query.Location))
	opts := &fetch.Options{
		Timeout: s.Timeout,
		Query:   params,
		Client:  s.Client,
	}

	var resp adzunaResponse
	if _, err := fetch.GetJSON(ctx, endpoint, opts, &resp); err != nil {
		return nil, &AdapterError{Source: AdzunaName, Message: "search request failed", Cause: err}
	}

	records := make([]types.JobRecord, 0, len(resp.Results))
	for _, r := range resp.Results {
		records = append(records, r.toRecord())
	}
	return records, nil
}

func (r adzunaResult) toRecord() types.JobRecord {
	return types.JobRecord{
		// Adzuna highlights matched terms with <strong> tags
		Title:      orNA(fetch.StripMarkup(r.Title)),
		Company:    orNA(r.Company.DisplayName),
		Location:   orNA(r.Location.DisplayName),
		JobType:    orNA(r.ContractType),
		Salary:     FormatAdzunaSalary(r.SalaryMin.float(), r.SalaryMax.float()),
		DatePosted: orNA(r.Created),
		ApplyLink:  orNA(r.RedirectURL),
		Source:     AdzunaName,
	}
}

// CountryCode picks the Adzuna country index for a free-text location.
// Unrecognized locations search the US index.
func CountryCode(location string) string {
	location = strings.ToLower(location)
	for _, c := range adzunaCountries {
		for _, needle := range c.needles {
			if strings.Contains(location, needle) {
				return c.code
			}
		}
	}
	return "us"
}

// FormatAdzunaSalary formats salary bounds as "$X - $Y yearly".
func FormatAdzunaSalary(minSalary, maxSalary *float64) string {
	return aggregate.FormatSalaryRange(minSalary, maxSalary, "yearly")
}
