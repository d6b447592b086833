package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"rent-reconciliation/internal/domain"
)

const sheetName = "Reconciliation"

// WriteXLSX writes the grouped report as an xlsx workbook at path, one sheet
// with the same layout as the CSV export.
func WriteXLSX(path string, report *domain.Report, order GroupOrder) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	rowNum := 1
	writeRow := func(cells []string) error {
		values := make([]interface{}, len(cells))
		for i, c := range cells {
			values[i] = c
		}
		cell := fmt.Sprintf("A%d", rowNum)
		rowNum++
		return f.SetSheetRow(sheetName, cell, &values)
	}

	if err := writeRow(tableHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, group := range GroupByApt(report.Matches, order) {
		for _, m := range group.Rows {
			if err := writeRow(matchCells(m)); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
		if err := writeRow(subtotalCells(group)); err != nil {
			return fmt.Errorf("failed to write subtotal row: %w", err)
		}
	}
	if err := writeRow(totalCells(report.Summary)); err != nil {
		return fmt.Errorf("failed to write total row: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}
