// Package gateway adapts files on disk into the raw tables the core
// consumes. It is the only layer that touches I/O or spreadsheet binary
// formats; everything past it operates on in-memory tables.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"rent-reconciliation/internal/appcontext"
	"rent-reconciliation/internal/domain"
	"rent-reconciliation/internal/tabular"
)

// ErrUnsupportedFormat is returned for file extensions the gateway cannot
// decode. Legacy .xls workbooks fall in this bucket; re-export as .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// FileTableRepository implements usecase.StatementRepository over local
// files, dispatching on extension between delimited text and xlsx workbooks.
type FileTableRepository struct{}

// NewFileTableRepository creates a new repository instance.
func NewFileTableRepository() *FileTableRepository {
	return &FileTableRepository{}
}

// GetBankTable loads a bank statement, discarding skipRows preamble lines
// before the header row.
func (r *FileTableRepository) GetBankTable(ctx context.Context, path string, skipRows int) (domain.RawTable, error) {
	return r.load(ctx, path, skipRows)
}

// GetOtherTable loads a secondary payment-source table with no preamble.
func (r *FileTableRepository) GetOtherTable(ctx context.Context, path string) (domain.RawTable, error) {
	return r.load(ctx, path, 0)
}

// GetTenantTable loads the tenant roster with no preamble.
func (r *FileTableRepository) GetTenantTable(ctx context.Context, path string) (domain.RawTable, error) {
	return r.load(ctx, path, 0)
}

func (r *FileTableRepository) load(ctx context.Context, path string, skipRows int) (domain.RawTable, error) {
	logger := appcontext.LoggerFromContext(ctx)

	var table domain.RawTable
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		table = tabular.Parse(string(content), skipRows)
	case ".xlsx":
		rows, err := readWorkbookRows(path)
		if err != nil {
			return nil, err
		}
		// Spreadsheet cells stay textual; numeric coercion happens in
		// the normalizers.
		table = tabular.FromRows(rows, skipRows)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	logger.DebugContext(ctx, "loaded statement table",
		"path", path,
		"skip_rows", skipRows,
		"rows", len(table),
	)
	return table, nil
}

// readWorkbookRows extracts the first sheet of an xlsx workbook as raw text
// cells.
func readWorkbookRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q from %s: %w", sheet, path, err)
	}
	return rows, nil
}
