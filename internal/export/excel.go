package export

import (
	"fmt"
	"io"

	"github.com/jonathan/resume-critiquer/internal/types"
	"github.com/xuri/excelize/v2"
)

const (
	jobsSheet = "Jobs"
	noteSheet = "Sample"
)

var columnWidths = []float64{40, 28, 24, 14, 30, 22, 50, 14}

// WriteXLSX writes the records to a "Jobs" sheet with a styled, frozen,
// filterable header. Sample sets get an extra sheet carrying the notice.
func WriteXLSX(w io.Writer, set *types.JobResultSet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", jobsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := writeJobsSheet(f, records(set)); err != nil {
		return fmt.Errorf("failed to create jobs sheet: %w", err)
	}
	if set != nil && set.Sample {
		if err := writeNoteSheet(f, set.Notice); err != nil {
			return fmt.Errorf("failed to create sample sheet: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func writeJobsSheet(f *excelize.File, recs []types.JobRecord) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(jobsSheet, col, col, width); err != nil {
			return err
		}
	}

	if err := f.SetSheetRow(jobsSheet, "A1", &types.JobRecordHeader); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(types.JobRecordHeader))
	if err := f.SetCellStyle(jobsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, r := range recs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := r.Columns()
		if err := f.SetSheetRow(jobsSheet, cell, &row); err != nil {
			return err
		}
	}

	if len(recs) > 0 {
		ref := fmt.Sprintf("A1:%s%d", lastCol, len(recs)+1)
		if err := f.AutoFilter(jobsSheet, ref, []excelize.AutoFilterOptions{}); err != nil {
			return err
		}
	}

	return f.SetPanes(jobsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeNoteSheet(f *excelize.File, notice string) error {
	if _, err := f.NewSheet(noteSheet); err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetColWidth(noteSheet, "B", "B", 80); err != nil {
		return err
	}
	if err := f.SetCellValue(noteSheet, "A1", "Note:"); err != nil {
		return err
	}
	if err := f.SetCellStyle(noteSheet, "A1", "A1", labelStyle); err != nil {
		return err
	}
	return f.SetCellValue(noteSheet, "B1", notice)
}
