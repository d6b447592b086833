package usecase

import (
	"github.com/shopspring/decimal"

	"rent-reconciliation/internal/domain"
)

// toleranceEpsilon is the dollar difference below which expected and actual
// are considered equal, absorbing rounding noise from currency parsing. The
// comparison is strict: a difference of exactly 0.01 is a mismatch. Decimal
// comparison keeps the boundary exact where raw float subtraction would not
// (1000.01 - 1000.00 is slightly under 0.01 in float64).
var toleranceEpsilon = decimal.NewFromFloat(0.01)

// AggregatePayments folds payment records from all sources into a single
// total per payer key. An absent key reads as zero; the empty key is a
// legitimate bucket for records whose source row had no description.
func AggregatePayments(payments []domain.PaymentRecord) map[string]float64 {
	totals := make(map[string]float64, len(payments))
	for _, p := range payments {
		totals[p.PayerKey] += p.Amount
	}
	return totals
}

// Reconcile classifies each tenant against the aggregated payment totals.
// It produces exactly one MatchResult per tenant, in tenant input order, and
// never fails: malformed inputs have already been coerced to zero values
// upstream and flow through classification like any other.
//
// A tenant with no positive payment total is always "missing", even when
// zero rent was expected.
func Reconcile(tenants []domain.TenantRecord, paymentTotals map[string]float64) []domain.MatchResult {
	matches := make([]domain.MatchResult, 0, len(tenants))
	for _, tenant := range tenants {
		actual := paymentTotals[tenant.PayerKey]
		diff := decimal.NewFromFloat(actual).Sub(decimal.NewFromFloat(tenant.ExpectedRent))

		status := domain.StatusMissing
		if actual > 0 {
			if diff.Abs().LessThan(toleranceEpsilon) {
				status = domain.StatusMatch
			} else {
				status = domain.StatusMismatch
			}
		}

		name := tenant.Name
		if name == "" {
			name = tenant.PayerKey
		}

		matches = append(matches, domain.MatchResult{
			TenantName:   name,
			PayerKey:     tenant.PayerKey,
			Email:        tenant.Email,
			Phone:        tenant.Phone,
			Address:      tenant.Address,
			Apt:          tenant.Apt,
			RoomNo:       tenant.RoomNo,
			ExpectedRent: tenant.ExpectedRent,
			ActualAmount: actual,
			Difference:   diff.InexactFloat64(),
			Status:       status,
		})
	}
	return matches
}

// Summarize totals a match sequence. MismatchCount keeps its historical
// "anything that is not a match" meaning, while the strict per-status counts
// remain available alongside it.
func Summarize(matches []domain.MatchResult) domain.Summary {
	var s domain.Summary
	for _, m := range matches {
		s.TotalExpected += m.ExpectedRent
		s.TotalActual += m.ActualAmount
		s.TotalDifference += m.Difference

		switch m.Status {
		case domain.StatusMatch:
			s.MatchCount++
		case domain.StatusMismatch:
			s.StrictMismatchCount++
		case domain.StatusMissing:
			s.MissingCount++
		}
	}
	s.MismatchCount = len(matches) - s.MatchCount
	return s
}
