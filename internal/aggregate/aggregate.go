// Package aggregate merges job records from every source into the final result set.
package aggregate

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-critiquer/internal/types"
)

// Placeholder for a missing field.
const NotAvailable = "N/A"

// Aggregate normalizes, deduplicates and sorts records into a new result set.
// Empty input yields an explicitly empty set rather than nil records.
func Aggregate(records []types.JobRecord) types.JobResultSet {
	normalized := make([]types.JobRecord, 0, len(records))
	for _, r := range records {
		normalized = append(normalized, Normalize(r))
	}

	out := Dedupe(normalized)
	SortByDatePosted(out)
	return types.JobResultSet{Records: out}
}

// Normalize fills empty fields with placeholders so no field is ever blank.
func Normalize(r types.JobRecord) types.JobRecord {
	fill := func(s, placeholder string) string {
		if strings.TrimSpace(s) == "" {
			return placeholder
		}
		return strings.TrimSpace(s)
	}

	r.Title = fill(r.Title, NotAvailable)
	r.Company = fill(r.Company, NotAvailable)
	r.Location = fill(r.Location, NotAvailable)
	r.JobType = fill(r.JobType, NotAvailable)
	r.Salary = fill(r.Salary, SalaryNotSpecified)
	r.DatePosted = fill(r.DatePosted, NotAvailable)
	r.ApplyLink = fill(r.ApplyLink, NotAvailable)
	r.Source = fill(r.Source, NotAvailable)
	return r
}

type dedupeKey struct {
	title   string
	company string
}

// Dedupe keeps the first record for each (Title, Company) pair.
func Dedupe(records []types.JobRecord) []types.JobRecord {
	seen := make(map[dedupeKey]bool, len(records))
	out := make([]types.JobRecord, 0, len(records))
	for _, r := range records {
		key := dedupeKey{title: r.Title, company: r.Company}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// SortByDatePosted orders records by DatePosted descending, in place.
// The comparison is a plain string comparison: ISO timestamps sort
// chronologically among themselves, relative strings such as "3 days ago" do not.
// Ties keep their input order.
func SortByDatePosted(records []types.JobRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DatePosted > records[j].DatePosted
	})
}

// Filter returns a new result set holding the records that match keep.
// The input set is not modified.
func Filter(set types.JobResultSet, keep func(types.JobRecord) bool) types.JobResultSet {
	out := types.JobResultSet{
		Records: make([]types.JobRecord, 0, len(set.Records)),
		Sample:  set.Sample,
		Notice:  set.Notice,
	}
	for _, r := range set.Records {
		if keep(r) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// BySource matches records from the named source, case-insensitively. The
// trailing " API" of provider names is optional, so "adzuna" matches
// "Adzuna API".
func BySource(source string) func(types.JobRecord) bool {
	want := sourceKey(source)
	return func(r types.JobRecord) bool {
		return sourceKey(r.Source) == want
	}
}

func sourceKey(source string) string {
	key := strings.ToLower(strings.TrimSpace(source))
	return strings.TrimSpace(strings.TrimSuffix(key, " api"))
}
