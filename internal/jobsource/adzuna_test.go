package jobsource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonathan/resume-critiquer/internal/aggregate"
	"github.com/jonathan/resume-critiquer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adzunaBody = `{
  "count": 2,
  "results": [
    {
      "title": "Senior <strong>Python</strong> Developer",
      "company": {"display_name": "Acme Ltd"},
      "location": {"display_name": "London, UK"},
      "contract_type": "permanent",
      "salary_min": 55000.5,
      "salary_max": 70000,
      "created": "2024-05-01T09:00:00Z",
      "redirect_url": "https://adzuna.example/1"
    },
    {
      "title": "Data Analyst",
      "company": {},
      "location": {"display_name": "Leeds"},
      "salary_max": 40000,
      "created": "2024-04-30T09:00:00Z",
      "redirect_url": "https://adzuna.example/2"
    }
  ]
}`

func newAdzunaServer(t *testing.T, handler http.HandlerFunc) *Adzuna {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s := NewAdzuna("app-id", "app-key")
	s.BaseURL = server.URL
	return s
}

func TestAdzuna_Search(t *testing.T) {
	s := newAdzunaServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gb/search/1", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "app-id", q.Get("app_id"))
		assert.Equal(t, "app-key", q.Get("app_key"))
		assert.Equal(t, "10", q.Get("results_per_page"))
		assert.Equal(t, "Python Developer", q.Get("what"))
		assert.Equal(t, "London, United Kingdom", q.Get("where"))
		assert.Equal(t, "date", q.Get("sort_by"))
		assert.Equal(t, "permanent", q.Get("category"))

		_, _ = w.Write([]byte(adzunaBody))
	})

	query := types.NewJobQuery("Python Developer")
	query.Location = "London, United Kingdom"
	query.JobType = types.JobTypeFullTime

	records, err := s.Search(context.Background(), query, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, types.JobRecord{
		Title:      "Senior Python Developer",
		Company:    "Acme Ltd",
		Location:   "London, UK",
		JobType:    "permanent",
		Salary:     "$55,000 - $70,000 yearly",
		DatePosted: "2024-05-01T09:00:00Z",
		ApplyLink:  "https://adzuna.example/1",
		Source:     "Adzuna API",
	}, records[0])

	assert.Equal(t, "N/A", records[1].Company)
	assert.Equal(t, "N/A", records[1].JobType)
	assert.Equal(t, "Up to $40,000 yearly", records[1].Salary)
}

func TestAdzuna_PageSizeCappedAtTwenty(t *testing.T) {
	s := newAdzunaServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("results_per_page"))
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	_, err := s.Search(context.Background(), types.NewJobQuery("Go"), 35)
	require.NoError(t, err)
}

func TestAdzuna_RecordsMatchSourceFilter(t *testing.T) {
	s := newAdzunaServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(adzunaBody))
	})

	records, err := s.Search(context.Background(), types.NewJobQuery("Python"), 10)
	require.NoError(t, err)

	set := types.JobResultSet{Records: records}
	assert.Len(t, aggregate.Filter(set, aggregate.BySource("Adzuna")).Records, len(records))
	assert.Empty(t, aggregate.Filter(set, aggregate.BySource("JSearch")).Records)
}

func TestAdzuna_CategoryFilter(t *testing.T) {
	tests := []struct {
		jobType types.JobType
		want    string
	}{
		{types.JobTypeFullTime, "permanent"},
		{types.JobTypePartTime, "part_time"},
		{types.JobTypeContract, "contract"},
		{types.JobTypeInternship, "graduate"},
		{types.JobTypeAny, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.jobType), func(t *testing.T) {
			s := newAdzunaServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.want, r.URL.Query().Get("category"))
				_, _ = w.Write([]byte(`{"results":[]}`))
			})

			query := types.NewJobQuery("Go")
			query.JobType = tt.jobType
			_, err := s.Search(context.Background(), query, 10)
			require.NoError(t, err)
		})
	}
}

func TestAdzuna_TimeoutHidesCredentials(t *testing.T) {
	release := make(chan struct{})
	s := newAdzunaServer(t, func(http.ResponseWriter, *http.Request) {
		<-release
	})
	t.Cleanup(func() { close(release) })
	s.AppKey = "super-secret-key"
	s.Timeout = 50 * time.Millisecond

	_, err := s.Search(context.Background(), types.NewJobQuery("Go"), 10)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret-key")
	assert.NotContains(t, err.Error(), "app-id")
}

func TestAdzuna_Non200(t *testing.T) {
	s := newAdzunaServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	records, err := s.Search(context.Background(), types.NewJobQuery("Go"), 10)
	assert.Empty(t, records)

	var adapterErr *AdapterError
	require.True(t, errors.As(err, &adapterErr))
	assert.Equal(t, "Adzuna API", adapterErr.Source)
	assert.NotContains(t, err.Error(), "app-key")
}

func TestAdzuna_Configured(t *testing.T) {
	assert.True(t, NewAdzuna("id", "key").Configured())
	assert.False(t, NewAdzuna("id", "").Configured())
	assert.False(t, NewAdzuna("", "key").Configured())
	assert.False(t, NewAdzuna(AdzunaAppIDPlaceholder, "key").Configured())
	assert.False(t, NewAdzuna("id", AdzunaAppKeyPlaceholder).Configured())
}

func TestCountryCode(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"London, UK", "gb"},
		{"United Kingdom", "gb"},
		{"Toronto, Canada", "ca"},
		{"Sydney, Australia", "au"},
		{"United States", "us"},
		{"Berlin, Germany", "us"},
		{"", "us"},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, CountryCode(tt.location))
		})
	}
}

func TestFormatAdzunaSalary(t *testing.T) {
	lo, hi := 30000.0, 45000.0

	assert.Equal(t, "$30,000 - $45,000 yearly", FormatAdzunaSalary(&lo, &hi))
	assert.Equal(t, "$30,000+ yearly", FormatAdzunaSalary(&lo, nil))
	assert.Equal(t, "Salary not specified", FormatAdzunaSalary(nil, nil))
}
