package usecase

import (
	"context"

	"rent-reconciliation/internal/domain"
)

// StatementRepository defines the interface for loading raw tables from
// uploaded files. The usecase layer depends on this interface, not on a
// concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go StatementRepository
type StatementRepository interface {
	// GetBankTable loads a bank statement, discarding skipRows preamble
	// lines before the header.
	GetBankTable(ctx context.Context, path string, skipRows int) (domain.RawTable, error)
	// GetOtherTable loads a secondary payment-source table.
	GetOtherTable(ctx context.Context, path string) (domain.RawTable, error)
	// GetTenantTable loads the tenant roster.
	GetTenantTable(ctx context.Context, path string) (domain.RawTable, error)
}
