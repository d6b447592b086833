package normalize

import "rent-reconciliation/internal/domain"

// Field names a logical tenant attribute resolved through column aliases.
type Field string

const (
	FieldName         Field = "name"
	FieldPayerKey     Field = "payerKey"
	FieldExpectedRent Field = "expectedRent"
	FieldEmail        Field = "email"
	FieldPhone        Field = "phone"
	FieldAddress      Field = "address"
	FieldApt          Field = "apt"
	FieldRoomNo       Field = "roomNo"
)

// AliasTable maps each logical field to a priority-ordered list of acceptable
// source column headers. Lookup is exact and case-sensitive on the header
// itself; the first present header wins.
type AliasTable map[Field][]string

// DefaultAliases returns the baseline alias table covering every header
// variant seen across tenant file exports.
func DefaultAliases() AliasTable {
	return AliasTable{
		FieldName:         {"Name", "TenantName"},
		FieldPayerKey:     {"Pays as", "Pays As"},
		FieldExpectedRent: {"ExpectedRent", "Expected Rent"},
		FieldEmail:        {"Email", "email"},
		FieldPhone:        {"Phone", "phone", "Phone Number"},
		FieldAddress:      {"Address", "address"},
		FieldApt:          {"Apt", "apt"},
		FieldRoomNo:       {"Room No", "RoomNo", "Room", "room_no", "Room#"},
	}
}

// Merge overlays per-field alias lists onto the table, replacing the list for
// any field the overlay names and leaving the rest untouched.
func (t AliasTable) Merge(overrides map[string][]string) AliasTable {
	merged := make(AliasTable, len(t))
	for field, names := range t {
		merged[field] = names
	}
	for field, names := range overrides {
		if len(names) > 0 {
			merged[Field(field)] = names
		}
	}
	return merged
}

// resolve returns the cell of the first alias present in the row with a
// non-empty value. Present-but-empty columns fall through to the next alias.
func (t AliasTable) resolve(row domain.RawRow, field Field) (domain.Cell, bool) {
	for _, name := range t[field] {
		if cell, ok := row[name]; ok && !cell.IsZero() {
			return cell, true
		}
	}
	return domain.Cell{}, false
}

// text resolves a field and renders it as a string, empty when absent.
func (t AliasTable) text(row domain.RawRow, field Field) string {
	cell, ok := t.resolve(row, field)
	if !ok {
		return ""
	}
	return cell.String()
}
