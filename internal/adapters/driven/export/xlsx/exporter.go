// Package xlsx writes the leaderboard as an Excel workbook.
package xlsx

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marks-cli/internal/format"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

// Ensure Exporter implements the interface.
var _ driven.ReportExporter = (*Exporter)(nil)

// SheetName is the name of the single worksheet produced.
const SheetName = "Leaderboard"

// Exporter renders standings into a workbook with one row per student.
type Exporter struct{}

// NewExporter creates an xlsx exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Extension returns ".xlsx".
func (e *Exporter) Extension() string {
	return ".xlsx"
}

// Export writes a header row (Rank, Roll, Name, subjects..., Total) followed
// by one row per standing. Missing marks are left blank.
func (e *Exporter) Export(
	_ context.Context, standings []domain.Standing, subjects []string, w io.Writer,
) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Error closing workbook: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"Rank", "Roll", "Name"}
	for _, subject := range subjects {
		header = append(header, format.Subject(subject))
	}
	header = append(header, "Total")
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, st := range standings {
		row := []any{st.Rank, st.Student.RollNumber, st.Student.Name}
		for _, subject := range subjects {
			if mark, ok := st.Student.Marks.Get(subject); ok {
				row = append(row, mark)
			} else {
				row = append(row, nil)
			}
		}
		row = append(row, st.Total)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	logger.Debug("Exported %d standings across %d subjects", len(standings), len(subjects))
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
