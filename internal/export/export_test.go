package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-critiquer/internal/schemas"
	"github.com/jonathan/resume-critiquer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testSet() *types.JobResultSet {
	return &types.JobResultSet{Records: []types.JobRecord{
		{
			Title:      "Go Developer",
			Company:    "Acme, Inc.",
			Location:   "Austin, TX",
			JobType:    "FULLTIME",
			Salary:     "$100,000 - $120,000/year",
			DatePosted: "2024-05-01",
			ApplyLink:  "https://example.com/apply",
			Source:     "JSearch",
		},
		{
			Title:      "Backend Engineer",
			Company:    "Globex",
			Location:   "Remote",
			JobType:    "Full-time",
			Salary:     "Salary not specified",
			DatePosted: "2024-04-30",
			ApplyLink:  "N/A",
			Source:     "Adzuna",
		},
	}}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "csv", expected: FormatCSV},
		{input: ".CSV", expected: FormatCSV},
		{input: "xlsx", expected: FormatXLSX},
		{input: "excel", expected: FormatXLSX},
		{input: " json ", expected: FormatJSON},
		{input: "pdf", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatForPath(t *testing.T) {
	got, err := FormatForPath("out/jobs.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, got)

	_, err = FormatForPath("jobs")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testSet()))

	assert.True(t, strings.HasPrefix(buf.String(),
		"Job Title,Company,Location,Job Type,Salary,Date Posted,Apply Link,Source\n"))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Acme, Inc.", rows[1][1])
	assert.Equal(t, "$100,000 - $120,000/year", rows[1][4])
	assert.Equal(t, "Adzuna", rows[2][7])
}

func TestWriteCSV_EmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Job Title,Company,Location,Job Type,Salary,Date Posted,Apply Link,Source\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testSet()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{jobsSheet}, f.GetSheetList())

	rows, err := f.GetRows(jobsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, types.JobRecordHeader, rows[0])
	assert.Equal(t, "Go Developer", rows[1][0])
	assert.Equal(t, "Globex", rows[2][1])
}

func TestWriteXLSX_SampleNoteSheet(t *testing.T) {
	set := testSet()
	set.Sample = true
	set.Notice = "Showing sample data"

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, set))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), noteSheet)
	note, err := f.GetCellValue(noteSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Showing sample data", note)
}

func TestWriteJSON(t *testing.T) {
	set := testSet()
	set.Sample = true
	set.Notice = "sample"

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, set))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.Count)
	assert.True(t, doc.Sample)
	assert.Equal(t, "sample", doc.Notice)
	assert.Equal(t, set.Records, doc.Records)
}

func TestWriteJSON_EmptySetHasRecordsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &types.JobResultSet{}))
	assert.Contains(t, buf.String(), `"records": []`)
}

func TestWriteJSON_RejectsBlankFields(t *testing.T) {
	set := &types.JobResultSet{Records: []types.JobRecord{{Title: "Only a title"}}}

	var buf bytes.Buffer
	err := WriteJSON(&buf, set)

	var ve *schemas.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"jobs.csv", "jobs.xlsx", "jobs.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			format, err := WriteFile(path, testSet())
			require.NoError(t, err)
			assert.Equal(t, Format(strings.TrimPrefix(filepath.Ext(name), ".")), format)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}

	_, err := WriteFile(filepath.Join(dir, "jobs.txt"), testSet())
	assert.Error(t, err)
}

func TestWriteFileAs_IgnoresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.out")

	require.NoError(t, WriteFileAs(path, FormatJSON, testSet()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 2, doc.Count)
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
	assert.Contains(t, FormatXLSX.ContentType(), "spreadsheetml")
}
