// Package normalize cleans raw statement and tenant rows into canonical
// records. All coercion is total: malformed numeric literals become 0 and no
// function here returns an error.
package normalize

import (
	"strconv"
	"strings"

	"rent-reconciliation/internal/domain"
)

// zellePrefixes are the transaction-memo prefixes that mark a row as an
// incoming transfer on a bank statement. Anything else on the statement
// (fees, checks, card activity) is dropped silently when filtering.
var zellePrefixes = []string{
	"Zelle payment from ",
	"Zelle Scheduled payment from ",
}

// Payments normalizes raw statement rows into payment records.
//
// With requirePrefixFilter set (the bank-statement path), only rows whose
// Description carries a known transfer prefix are kept, and the payer key is
// derived by stripping the prefix, the " for " memo suffix and the " Conf# "
// confirmation suffix before lowercasing.
//
// Without the filter (secondary payment sources), rows are kept whenever both
// Description and Amount are present, the payer key is the trimmed lowercased
// description as-is, and the date defaults to empty.
func Payments(rows domain.RawTable, requirePrefixFilter bool) []domain.PaymentRecord {
	records := make([]domain.PaymentRecord, 0, len(rows))
	for _, row := range rows {
		desc := row["Description"]
		amount := row["Amount"]

		if requirePrefixFilter {
			prefix, ok := matchPrefix(desc.String())
			if !ok {
				continue
			}
			records = append(records, domain.PaymentRecord{
				PayerKey: payerKeyFromMemo(desc.String(), prefix),
				Amount:   CoerceAmount(amount),
				Date:     row["Date"].String(),
			})
			continue
		}

		if desc.IsZero() || amount.IsZero() {
			continue
		}
		records = append(records, domain.PaymentRecord{
			PayerKey: strings.ToLower(strings.TrimSpace(desc.String())),
			Amount:   CoerceAmount(amount),
		})
	}
	return records
}

func matchPrefix(description string) (string, bool) {
	for _, prefix := range zellePrefixes {
		if strings.HasPrefix(description, prefix) {
			return prefix, true
		}
	}
	return "", false
}

// payerKeyFromMemo derives a stable payer identity from free-text memo such
// as "Zelle payment from John Smith for May Rent Conf# 12345".
func payerKeyFromMemo(description, prefix string) string {
	key := strings.TrimSpace(strings.TrimPrefix(description, prefix))
	if i := strings.Index(key, " for "); i >= 0 {
		key = key[:i]
	}
	if i := strings.Index(key, " Conf# "); i >= 0 {
		key = key[:i]
	}
	return strings.ToLower(key)
}

// CoerceAmount turns a raw cell into a finite amount. Number cells pass
// through; text cells are stripped of commas and dollar signs and parsed.
// Anything unparsable becomes 0 rather than NaN or an error.
func CoerceAmount(cell domain.Cell) float64 {
	if cell.Kind == domain.CellNumber {
		return cell.Number
	}
	cleaned := strings.TrimSpace(strings.NewReplacer(",", "", "$", "").Replace(cell.Text))
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}
