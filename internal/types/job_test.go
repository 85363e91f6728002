//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   JobQuery
		wantErr bool
		errMsg  string
	}{
		{
			name:  "defaults are valid",
			query: NewJobQuery("Python Developer"),
		},
		{
			name:    "empty term",
			query:   NewJobQuery(""),
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "whitespace term",
			query:   NewJobQuery("   "),
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "count below minimum",
			query:   JobQuery{Term: "Go", Location: "Remote", Count: 5, JobType: JobTypeAny},
			wantErr: true,
			errMsg:  "min",
		},
		{
			name:    "count above maximum",
			query:   JobQuery{Term: "Go", Location: "Remote", Count: 51, JobType: JobTypeAny},
			wantErr: true,
			errMsg:  "max",
		},
		{
			name:  "count at bounds",
			query: JobQuery{Term: "Go", Location: "Remote", Count: 50, JobType: JobTypeContract},
		},
		{
			name:    "unknown job type",
			query:   JobQuery{Term: "Go", Location: "Remote", Count: 10, JobType: "Seasonal"},
			wantErr: true,
			errMsg:  "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestJobQuery_Normalize(t *testing.T) {
	q := JobQuery{Term: "  Data Engineer "}.Normalize()

	assert.Equal(t, "Data Engineer", q.Term)
	assert.Equal(t, DefaultLocation, q.Location)
	assert.Equal(t, DefaultCount, q.Count)
	assert.Equal(t, JobTypeAny, q.JobType)
}

func TestParseJobType(t *testing.T) {
	jt, err := ParseJobType("full-time")
	require.NoError(t, err)
	assert.Equal(t, JobTypeFullTime, jt)

	jt, err = ParseJobType("")
	require.NoError(t, err)
	assert.True(t, jt.IsAny())

	_, err = ParseJobType("gig")
	assert.Error(t, err)
}

func TestJobRecord_ColumnsMatchHeader(t *testing.T) {
	r := JobRecord{
		Title:      "Go Engineer",
		Company:    "Acme",
		Location:   "Austin, TX",
		JobType:    "FULLTIME",
		Salary:     "Salary not specified",
		DatePosted: "2024-01-02T00:00:00Z",
		ApplyLink:  "https://acme.example/jobs/1",
		Source:     "JSearch API",
	}

	cols := r.Columns()
	require.Len(t, cols, len(JobRecordHeader))
	assert.Equal(t, "Go Engineer", cols[0])
	assert.Equal(t, "JSearch API", cols[7])
	assert.Equal(t, "Job Title", JobRecordHeader[0])
	assert.Equal(t, "Source", JobRecordHeader[7])
}

func TestJobResultSet_Empty(t *testing.T) {
	var notRun *JobResultSet
	assert.False(t, notRun.Empty())
	assert.Equal(t, 0, notRun.Len())

	ran := &JobResultSet{Records: []JobRecord{}}
	assert.True(t, ran.Empty())
}

func TestSession(t *testing.T) {
	var s Session
	assert.False(t, s.HasResume())

	s.Set("first")
	s.Set("second")
	assert.True(t, s.HasResume())
	assert.Equal(t, "second", s.Text())

	var nilSession *Session
	assert.Equal(t, "", nilSession.Text())
}
