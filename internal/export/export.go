// Package export renders a reconciliation report for downstream consumers:
// indented JSON, and tabular CSV/xlsx grouped by apartment with per-group
// subtotals. MatchResult field names and the summary fields are the stable
// contract; everything here is presentation.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"rent-reconciliation/internal/domain"
)

// GroupOrder selects how apartment subtotal groups are ordered in tabular
// exports.
type GroupOrder string

const (
	// OrderFirstSeen preserves the order in which apartments first appear
	// in the tenant input. This is the default.
	OrderFirstSeen GroupOrder = "first-seen"
	// OrderLex sorts groups lexicographically by apartment label.
	OrderLex GroupOrder = "lex"
)

// ParseGroupOrder validates an order name, falling back to first-seen for
// anything unrecognized.
func ParseGroupOrder(s string) GroupOrder {
	if GroupOrder(s) == OrderLex {
		return OrderLex
	}
	return OrderFirstSeen
}

// AptGroup is one apartment's slice of match results plus its subtotals.
type AptGroup struct {
	Apt              string
	Rows             []domain.MatchResult
	SubtotalExpected float64
	SubtotalActual   float64
}

// GroupByApt buckets match results by apartment label and computes per-group
// subtotals. Rows within a group keep their match-sequence order; tenants
// with no apartment label group under the empty label.
func GroupByApt(matches []domain.MatchResult, order GroupOrder) []AptGroup {
	index := make(map[string]int)
	var groups []AptGroup
	for _, m := range matches {
		i, ok := index[m.Apt]
		if !ok {
			i = len(groups)
			index[m.Apt] = i
			groups = append(groups, AptGroup{Apt: m.Apt})
		}
		groups[i].Rows = append(groups[i].Rows, m)
		groups[i].SubtotalExpected += m.ExpectedRent
		groups[i].SubtotalActual += m.ActualAmount
	}

	if order == OrderLex {
		sort.Slice(groups, func(a, b int) bool { return groups[a].Apt < groups[b].Apt })
	}
	return groups
}

// WriteJSON writes the full report as indented JSON.
func WriteJSON(w io.Writer, report *domain.Report) error {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// tableHeader is the column layout shared by the CSV and xlsx writers.
var tableHeader = []string{
	"Tenant", "Pays As", "Email", "Phone", "Address", "Apt", "Room No",
	"Expected Rent", "Actual Amount", "Difference", "Status",
}

func matchCells(m domain.MatchResult) []string {
	return []string{
		m.TenantName,
		m.PayerKey,
		m.Email,
		m.Phone,
		m.Address,
		m.Apt,
		m.RoomNo,
		formatAmount(m.ExpectedRent),
		formatAmount(m.ActualAmount),
		formatAmount(m.Difference),
		string(m.Status),
	}
}

func subtotalCells(g AptGroup) []string {
	label := g.Apt
	if label == "" {
		label = "(no apt)"
	}
	return []string{
		"Subtotal " + label, "", "", "", "", g.Apt, "",
		formatAmount(g.SubtotalExpected),
		formatAmount(g.SubtotalActual),
		formatAmount(g.SubtotalActual - g.SubtotalExpected),
		"",
	}
}

func totalCells(s domain.Summary) []string {
	return []string{
		"Total", "", "", "", "", "", "",
		formatAmount(s.TotalExpected),
		formatAmount(s.TotalActual),
		formatAmount(s.TotalDifference),
		"",
	}
}

func formatAmount(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
