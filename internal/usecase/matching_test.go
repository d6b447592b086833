package usecase_test

import (
	"testing"

	"rent-reconciliation/internal/domain"
	"rent-reconciliation/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestAggregatePayments(t *testing.T) {
	tests := []struct {
		name     string
		payments []domain.PaymentRecord
		expected map[string]float64
	}{
		{
			name: "sums amounts grouped by payer key",
			payments: []domain.PaymentRecord{
				{PayerKey: "john smith", Amount: 500},
				{PayerKey: "john smith", Amount: 500},
				{PayerKey: "jane doe", Amount: 1000},
			},
			expected: map[string]float64{
				"john smith": 1000,
				"jane doe":   1000,
			},
		},
		{
			name: "empty payer key is a legitimate bucket",
			payments: []domain.PaymentRecord{
				{PayerKey: "", Amount: 100},
				{PayerKey: "", Amount: 50},
			},
			expected: map[string]float64{"": 150},
		},
		{
			name:     "no payments",
			payments: nil,
			expected: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, usecase.AggregatePayments(tt.payments))
		})
	}
}

func TestReconcile_Classification(t *testing.T) {
	tests := []struct {
		name         string
		expectedRent float64
		actualAmount float64
		wantStatus   domain.MatchStatus
	}{
		{"exact amount matches", 1000, 1000, domain.StatusMatch},
		{"difference below tolerance matches", 1000.00, 1000.009, domain.StatusMatch},
		{"difference of exactly one cent mismatches", 1000.00, 1000.01, domain.StatusMismatch},
		{"underpayment mismatches", 1000, 900, domain.StatusMismatch},
		{"overpayment mismatches", 1000, 1100, domain.StatusMismatch},
		{"no payment is missing", 1000, 0, domain.StatusMissing},
		{"zero expected and zero actual is still missing", 0, 0, domain.StatusMissing},
		{"negative total is missing", 1000, -50, domain.StatusMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenants := []domain.TenantRecord{
				{PayerKey: "john smith", ExpectedRent: tt.expectedRent, Name: "John Smith"},
			}
			totals := map[string]float64{}
			if tt.actualAmount != 0 {
				totals["john smith"] = tt.actualAmount
			}

			got := usecase.Reconcile(tenants, totals)

			assert.Len(t, got, 1)
			assert.Equal(t, tt.wantStatus, got[0].Status)
			assert.Equal(t, tt.actualAmount, got[0].ActualAmount)
			assert.InDelta(t, tt.actualAmount-tt.expectedRent, got[0].Difference, 1e-9)
		})
	}
}

func TestReconcile_CardinalityAndOrder(t *testing.T) {
	tenants := []domain.TenantRecord{
		{PayerKey: "c", Name: "C", ExpectedRent: 1},
		{PayerKey: "a", Name: "A", ExpectedRent: 2},
		{PayerKey: "b", Name: "B", ExpectedRent: 3},
	}
	totals := map[string]float64{"a": 2, "b": 100}

	got := usecase.Reconcile(tenants, totals)

	assert.Len(t, got, len(tenants))
	// Output order follows tenant input order, never payment order.
	assert.Equal(t, "C", got[0].TenantName)
	assert.Equal(t, "A", got[1].TenantName)
	assert.Equal(t, "B", got[2].TenantName)
}

func TestReconcile_Idempotence(t *testing.T) {
	tenants := []domain.TenantRecord{
		{PayerKey: "john smith", ExpectedRent: 1000, Name: "John Smith"},
		{PayerKey: "jane doe", ExpectedRent: 950, Name: "Jane Doe"},
	}
	totals := map[string]float64{"john smith": 1000, "jane doe": 800}

	first := usecase.Reconcile(tenants, totals)
	second := usecase.Reconcile(tenants, totals)

	assert.Equal(t, first, second)
}

func TestReconcile_NameFallsBackToPayerKey(t *testing.T) {
	got := usecase.Reconcile([]domain.TenantRecord{{PayerKey: "john smith"}}, nil)

	assert.Equal(t, "john smith", got[0].TenantName)
}

func TestReconcile_AggregatedTotalsAcrossSources(t *testing.T) {
	// Two partial payments under one identity satisfy the full rent.
	payments := []domain.PaymentRecord{
		{PayerKey: "john smith", Amount: 500},
		{PayerKey: "john smith", Amount: 500},
	}
	tenants := []domain.TenantRecord{
		{PayerKey: "john smith", ExpectedRent: 1000, Name: "John Smith"},
	}

	got := usecase.Reconcile(tenants, usecase.AggregatePayments(payments))

	assert.Equal(t, 1000.0, got[0].ActualAmount)
	assert.Equal(t, 0.0, got[0].Difference)
	assert.Equal(t, domain.StatusMatch, got[0].Status)
}

func TestSummarize(t *testing.T) {
	matches := []domain.MatchResult{
		{ExpectedRent: 1000, ActualAmount: 1000, Difference: 0, Status: domain.StatusMatch},
		{ExpectedRent: 900, ActualAmount: 700, Difference: -200, Status: domain.StatusMismatch},
		{ExpectedRent: 800, ActualAmount: 0, Difference: -800, Status: domain.StatusMissing},
		{ExpectedRent: 750, ActualAmount: 750, Difference: 0, Status: domain.StatusMatch},
	}

	got := usecase.Summarize(matches)

	assert.Equal(t, 3450.0, got.TotalExpected)
	assert.Equal(t, 2450.0, got.TotalActual)
	assert.Equal(t, -1000.0, got.TotalDifference)
	assert.Equal(t, 2, got.MatchCount)
	// MismatchCount folds missing in, per the historical summary contract.
	assert.Equal(t, 2, got.MismatchCount)
	assert.Equal(t, 1, got.StrictMismatchCount)
	assert.Equal(t, 1, got.MissingCount)

	// The per-status breakdown always partitions the full sequence.
	assert.Equal(t, len(matches), got.MatchCount+got.StrictMismatchCount+got.MissingCount)
	assert.Equal(t, len(matches)-got.MatchCount, got.MismatchCount)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, domain.Summary{}, usecase.Summarize(nil))
}
