// Package types provides type definitions for structured data used throughout the resume-critiquer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobType is the job-type filter accepted by a search.
type JobType string

// Supported job-type filters.
const (
	JobTypeAny        JobType = "Any"
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// Query defaults and bounds
const (
	DefaultLocation = "United States"
	DefaultCount    = 20
	MinCount        = 10
	MaxCount        = 50
)

// JobTypes lists the job-type filters in display order.
var JobTypes = []JobType{JobTypeAny, JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

// ParseJobType resolves a user-supplied job type case-insensitively.
// An empty string resolves to Any.
func ParseJobType(s string) (JobType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return JobTypeAny, nil
	}
	for _, jt := range JobTypes {
		if strings.EqualFold(s, string(jt)) {
			return jt, nil
		}
	}
	return "", fmt.Errorf("unknown job type %q (expected one of Any, Full-time, Part-time, Contract, Internship)", s)
}

// IsAny reports whether the job type applies no filter.
func (t JobType) IsAny() bool {
	return t == "" || strings.EqualFold(string(t), string(JobTypeAny))
}

// JobQuery is a normalized job search request.
type JobQuery struct {
	Term     string  `json:"term" validate:"required"`
	Location string  `json:"location"`
	Count    int     `json:"count" validate:"min=10,max=50"`
	JobType  JobType `json:"job_type" validate:"oneof=Any Full-time Part-time Contract Internship"`
}

// NewJobQuery builds a query for term with default location, count and job type.
func NewJobQuery(term string) JobQuery {
	return JobQuery{
		Term:     term,
		Location: DefaultLocation,
		Count:    DefaultCount,
		JobType:  JobTypeAny,
	}
}

// Normalize trims the query fields and fills in defaults for the empty ones.
func (q JobQuery) Normalize() JobQuery {
	q.Term = strings.TrimSpace(q.Term)
	q.Location = strings.TrimSpace(q.Location)
	if q.Location == "" {
		q.Location = DefaultLocation
	}
	if q.Count == 0 {
		q.Count = DefaultCount
	}
	if q.JobType == "" {
		q.JobType = JobTypeAny
	}
	return q
}

// Validate validates the query fields. The search term must be non-empty after trimming.
func (q JobQuery) Validate() error {
	q.Term = strings.TrimSpace(q.Term)
	return validator.New().Struct(q)
}

// JobRecord is a job posting in the shape shared by every source.
// All fields are display strings; placeholders such as "N/A" stand in for missing data.
type JobRecord struct {
	Title      string `json:"job_title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	JobType    string `json:"job_type"`
	Salary     string `json:"salary"`
	DatePosted string `json:"date_posted"`
	ApplyLink  string `json:"apply_link"`
	Source     string `json:"source"`
}

// JobRecordHeader is the column order used by every tabular export.
var JobRecordHeader = []string{
	"Job Title",
	"Company",
	"Location",
	"Job Type",
	"Salary",
	"Date Posted",
	"Apply Link",
	"Source",
}

// Columns returns the record fields in JobRecordHeader order.
func (r JobRecord) Columns() []string {
	return []string{
		r.Title,
		r.Company,
		r.Location,
		r.JobType,
		r.Salary,
		r.DatePosted,
		r.ApplyLink,
		r.Source,
	}
}

// JobResultSet is the final result of one search.
type JobResultSet struct {
	Records []JobRecord `json:"records"`
	// Sample is set when the records are synthetic rather than real postings.
	Sample bool   `json:"sample"`
	Notice string `json:"notice,omitempty"`
}

// Empty reports whether the search ran and found nothing.
func (s *JobResultSet) Empty() bool {
	return s != nil && len(s.Records) == 0
}

// Len returns the number of records.
func (s *JobResultSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}
