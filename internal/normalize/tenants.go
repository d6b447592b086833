package normalize

import (
	"strings"

	"rent-reconciliation/internal/domain"
)

// Tenants normalizes raw tenant rows using the given alias table. Unlike
// payment normalization, no row is ever dropped: every input row yields
// exactly one TenantRecord, with absent fields defaulting to empty strings
// and an unparsable rent defaulting to 0.
func Tenants(rows domain.RawTable, aliases AliasTable) []domain.TenantRecord {
	records := make([]domain.TenantRecord, 0, len(rows))
	for _, row := range rows {
		rent := domain.Cell{}
		if cell, ok := aliases.resolve(row, FieldExpectedRent); ok {
			rent = cell
		}

		records = append(records, domain.TenantRecord{
			PayerKey:     strings.ToLower(strings.TrimSpace(aliases.text(row, FieldPayerKey))),
			ExpectedRent: CoerceAmount(rent),
			Name:         aliases.text(row, FieldName),
			Email:        aliases.text(row, FieldEmail),
			Phone:        aliases.text(row, FieldPhone),
			Address:      aliases.text(row, FieldAddress),
			Apt:          aliases.text(row, FieldApt),
			RoomNo:       aliases.text(row, FieldRoomNo),
		})
	}
	return records
}
