package domain

import "time"

// MatchStatus classifies one tenant's expected-vs-actual outcome.
type MatchStatus string

const (
	StatusMatch    MatchStatus = "match"
	StatusMismatch MatchStatus = "mismatch"
	StatusMissing  MatchStatus = "missing"
)

// MatchResult is one tenant's reconciliation outcome.
// Difference is always ActualAmount - ExpectedRent.
type MatchResult struct {
	TenantName   string      `json:"tenantName"`
	PayerKey     string      `json:"payerKey"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Apt          string      `json:"apt"`
	RoomNo       string      `json:"roomNo"`
	ExpectedRent float64     `json:"expectedRent"`
	ActualAmount float64     `json:"actualAmount"`
	Difference   float64     `json:"difference"`
	Status       MatchStatus `json:"status"`
}

// Summary aggregates a match sequence. MismatchCount counts every result
// whose status is not "match", so it includes missing tenants; the strict
// per-status counts are kept alongside so neither breakdown is lost.
type Summary struct {
	TotalExpected   float64 `json:"totalExpected"`
	TotalActual     float64 `json:"totalActual"`
	TotalDifference float64 `json:"totalDifference"`
	MatchCount      int     `json:"matchCount"`
	MismatchCount   int     `json:"mismatchCount"`

	StrictMismatchCount int `json:"strictMismatchCount"`
	MissingCount        int `json:"missingCount"`
}

// Report is the full result of one reconciliation run.
type Report struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Summary     Summary       `json:"summary"`
	Matches     []MatchResult `json:"matches"`
}
