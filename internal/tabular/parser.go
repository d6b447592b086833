// Package tabular converts raw delimited text into ordered row tables keyed
// by column header. It is the only place where numeric-looking literals are
// inferred into numbers; spreadsheet-sourced tables bypass this package and
// stay textual until the normalizers coerce them.
package tabular

import (
	"regexp"
	"strconv"
	"strings"

	"rent-reconciliation/internal/domain"
)

// currencyPattern matches an optional leading dollar sign, comma-grouped
// digits and an optional decimal portion, e.g. "$1,250.00" or "980.5".
var currencyPattern = regexp.MustCompile(`^\$?[\d,]+\.?\d*$`)

// Parse splits delimited text into a RawTable, discarding the first skipRows
// lines before treating the next line as the header row. It returns an empty
// table when fewer than skipRows+2 lines exist (a header plus at least one
// data line is required); callers must treat zero rows as a reportable
// outcome, not an error.
//
// Field splitting is a plain comma split with quote stripping. Commas inside
// quoted fields are not supported.
func Parse(content string, skipRows int) domain.RawTable {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if skipRows < 0 {
		skipRows = 0
	}
	if len(lines) < skipRows+2 {
		return nil
	}
	lines = lines[skipRows:]

	headers := splitLine(lines[0])

	table := make(domain.RawTable, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitLine(line)
		row := make(domain.RawRow, len(headers))
		for i, header := range headers {
			value := ""
			if i < len(values) {
				value = values[i]
			}
			row[header] = inferCell(value)
		}
		table = append(table, row)
	}
	return table
}

// FromRows adapts pre-extracted spreadsheet rows (first row after skipRows is
// the header) into a RawTable of text cells. No numeric inference happens
// here: spreadsheet fields are coerced later, in the normalizers.
func FromRows(rows [][]string, skipRows int) domain.RawTable {
	if skipRows < 0 {
		skipRows = 0
	}
	if len(rows) < skipRows+2 {
		return nil
	}
	rows = rows[skipRows:]

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := make(domain.RawTable, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(domain.RawRow, len(headers))
		for i, header := range headers {
			value := ""
			if i < len(cells) {
				value = strings.TrimSpace(cells[i])
			}
			row[header] = domain.TextCell(value)
		}
		table = append(table, row)
	}
	return table
}

func splitLine(line string) []string {
	parts := strings.Split(line, ",")
	for i, part := range parts {
		parts[i] = strings.ReplaceAll(strings.TrimSpace(part), `"`, "")
	}
	return parts
}

// inferCell turns a currency-looking literal into a number cell and leaves
// everything else as text. A literal that matches the pattern but still fails
// to parse (e.g. a bare comma) stays textual so amounts never become NaN.
func inferCell(value string) domain.Cell {
	if currencyPattern.MatchString(value) {
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(value)
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return domain.NumberCell(f)
		}
	}
	return domain.TextCell(value)
}
