// Package export renders the shortlist into downloadable workbooks.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/talent-dashboard/internal/types"
)

// SheetName is the name of the workbook sheet holding the shortlist.
const SheetName = "Shortlist"

var shortlistHeaders = []string{
	"Name", "Email", "Phone", "Location", "Education",
	"Availability", "Salary (full-time)", "Score", "Notes",
}

// ShortlistXLSX renders the selected candidates into an xlsx workbook,
// one row per candidate in selection order.
func ShortlistXLSX(selected []types.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Error("failed to close workbook")
		}
	}()

	sheet := f.GetSheetName(0)
	for col, header := range shortlistHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, c := range selected {
		values := []any{
			c.Name,
			c.Email,
			c.Phone,
			c.Location,
			c.Education.HighestLevel,
			strings.Join(c.WorkAvailability, ", "),
			c.AnnualSalaryExpectation[types.AvailabilityFullTime],
			c.Score,
			c.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+1, err)
			}
		}
	}

	if err := f.SetSheetName(sheet, SheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	return f.WriteToBuffer()
}
