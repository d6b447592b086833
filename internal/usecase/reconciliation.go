package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rent-reconciliation/internal/appcontext"
	"rent-reconciliation/internal/domain"
	"rent-reconciliation/internal/normalize"
)

// Precondition failures surfaced before any matching is attempted. These are
// the only hard errors produced after the inputs loaded successfully;
// malformed individual rows are coerced, never reported.
var (
	ErrNoTenantData  = errors.New("no tenant rows parsed")
	ErrNoPaymentData = errors.New("no payment-source rows parsed")
)

// RunInput is one immutable snapshot of reconciliation inputs. Each Run call
// reloads and recomputes everything from this snapshot, so concurrent runs
// never observe a half-updated input set.
type RunInput struct {
	TenantPath   string
	BankPaths    []string
	OtherPaths   []string
	BankSkipRows int
	Aliases      normalize.AliasTable
}

// ReconciliationUseCase orchestrates one reconciliation run: load, normalize,
// aggregate, match, summarize.
type ReconciliationUseCase struct {
	repo StatementRepository
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(repo StatementRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo}
}

// Run performs a full reconciliation over the given input snapshot.
func (uc *ReconciliationUseCase) Run(ctx context.Context, input RunInput) (*domain.Report, error) {
	logger := appcontext.LoggerFromContext(ctx)

	tenantRows, err := uc.repo.GetTenantTable(ctx, input.TenantPath)
	if err != nil {
		return nil, fmt.Errorf("could not load tenant table: %w", err)
	}
	if len(tenantRows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTenantData, input.TenantPath)
	}

	var payments []domain.PaymentRecord
	var paymentRows int

	for _, path := range input.BankPaths {
		rows, err := uc.repo.GetBankTable(ctx, path, input.BankSkipRows)
		if err != nil {
			return nil, fmt.Errorf("could not load bank statement %s: %w", path, err)
		}
		paymentRows += len(rows)
		payments = append(payments, normalize.Payments(rows, true)...)
	}
	for _, path := range input.OtherPaths {
		rows, err := uc.repo.GetOtherTable(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("could not load payment source %s: %w", path, err)
		}
		paymentRows += len(rows)
		payments = append(payments, normalize.Payments(rows, false)...)
	}
	if paymentRows == 0 {
		return nil, ErrNoPaymentData
	}

	aliases := input.Aliases
	if aliases == nil {
		aliases = normalize.DefaultAliases()
	}
	tenants := normalize.Tenants(tenantRows, aliases)

	totals := AggregatePayments(payments)
	matches := Reconcile(tenants, totals)
	summary := Summarize(matches)

	logger.InfoContext(ctx, "reconciliation complete",
		"tenants", len(tenants),
		"payments", len(payments),
		"matched", summary.MatchCount,
		"missing", summary.MissingCount,
	)

	return &domain.Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
		Matches:     matches,
	}, nil
}
