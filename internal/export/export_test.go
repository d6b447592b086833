package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"testing"

	"rent-reconciliation/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *domain.Report {
	matches := []domain.MatchResult{
		{TenantName: "John Smith", PayerKey: "john smith", Apt: "2B", ExpectedRent: 1000, ActualAmount: 1000, Status: domain.StatusMatch},
		{TenantName: "Jane Doe", PayerKey: "jane doe", Apt: "1A", ExpectedRent: 950, ActualAmount: 700, Difference: -250, Status: domain.StatusMismatch},
		{TenantName: "Ana Lopez", PayerKey: "ana lopez", Apt: "2B", ExpectedRent: 800, ActualAmount: 0, Difference: -800, Status: domain.StatusMissing},
	}
	return &domain.Report{
		RunID:   "run-1",
		Matches: matches,
		Summary: domain.Summary{
			TotalExpected:   2750,
			TotalActual:     1700,
			TotalDifference: -1050,
			MatchCount:      1,
			MismatchCount:   2,
		},
	}
}

func TestGroupByApt_FirstSeenOrder(t *testing.T) {
	groups := GroupByApt(sampleReport().Matches, OrderFirstSeen)

	require.Len(t, groups, 2)
	assert.Equal(t, "2B", groups[0].Apt)
	assert.Equal(t, "1A", groups[1].Apt)

	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, 1800.0, groups[0].SubtotalExpected)
	assert.Equal(t, 1000.0, groups[0].SubtotalActual)
	assert.Equal(t, 950.0, groups[1].SubtotalExpected)
}

func TestGroupByApt_LexOrder(t *testing.T) {
	groups := GroupByApt(sampleReport().Matches, OrderLex)

	require.Len(t, groups, 2)
	assert.Equal(t, "1A", groups[0].Apt)
	assert.Equal(t, "2B", groups[1].Apt)
}

func TestGroupByApt_EmptyAptLabel(t *testing.T) {
	matches := []domain.MatchResult{
		{TenantName: "X", ExpectedRent: 100},
		{TenantName: "Y", Apt: "1A", ExpectedRent: 200},
	}

	groups := GroupByApt(matches, OrderFirstSeen)

	require.Len(t, groups, 2)
	assert.Equal(t, "", groups[0].Apt)
	assert.Equal(t, 100.0, groups[0].SubtotalExpected)
}

func TestParseGroupOrder(t *testing.T) {
	assert.Equal(t, OrderLex, ParseGroupOrder("lex"))
	assert.Equal(t, OrderFirstSeen, ParseGroupOrder("first-seen"))
	assert.Equal(t, OrderFirstSeen, ParseGroupOrder(""))
	assert.Equal(t, OrderFirstSeen, ParseGroupOrder("bogus"))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport(), OrderFirstSeen))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// header + 3 tenants + 2 subtotals + grand total
	require.Len(t, rows, 7)
	assert.Equal(t, tableHeader, rows[0])
	assert.Equal(t, "John Smith", rows[1][0])
	assert.Equal(t, "Ana Lopez", rows[2][0])
	assert.Equal(t, "Subtotal 2B", rows[3][0])
	assert.Equal(t, "1800.00", rows[3][7])
	assert.Equal(t, "Jane Doe", rows[4][0])
	assert.Equal(t, "Subtotal 1A", rows[5][0])
	assert.Equal(t, "Total", rows[6][0])
	assert.Equal(t, "2750.00", rows[6][7])
	assert.Equal(t, "1700.00", rows[6][8])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Len(t, decoded.Matches, 3)
	assert.Equal(t, 1, decoded.Summary.MatchCount)
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(path, sampleReport(), OrderLex))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "Subtotal 1A", rows[2][0])
	assert.Equal(t, "Total", rows[6][0])
}
