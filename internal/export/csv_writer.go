package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"rent-reconciliation/internal/domain"
)

// WriteCSV writes the match results grouped by apartment with subtotal rows
// and a grand-total row.
func WriteCSV(w io.Writer, report *domain.Report, order GroupOrder) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(tableHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, group := range GroupByApt(report.Matches, order) {
		for _, m := range group.Rows {
			if err := cw.Write(matchCells(m)); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
		if err := cw.Write(subtotalCells(group)); err != nil {
			return fmt.Errorf("failed to write subtotal row: %w", err)
		}
	}
	if err := cw.Write(totalCells(report.Summary)); err != nil {
		return fmt.Errorf("failed to write total row: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv output: %w", err)
	}
	return nil
}
