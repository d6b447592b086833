package domain

import "strconv"

// CellKind discriminates the two value shapes a raw table cell can hold.
type CellKind int

const (
	CellText CellKind = iota
	CellNumber
)

// Cell is a single raw table value: either free text or an already-coerced
// number. The zero value is an empty text cell, which is what a lookup of an
// absent column returns.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell wraps a string in a Cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell wraps a float in a Cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// String renders the cell for display or pass-through fields such as dates.
func (c Cell) String() string {
	if c.Kind == CellNumber {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}

// IsZero reports whether the cell is empty text or a zero number, the
// "absent or not useful" test applied when filtering payment rows.
func (c Cell) IsZero() bool {
	if c.Kind == CellNumber {
		return c.Number == 0
	}
	return c.Text == ""
}

// RawRow maps a column header to its raw cell value.
type RawRow map[string]Cell

// RawTable is an ordered sequence of raw rows sharing one header set.
type RawTable []RawRow

// PaymentRecord is a normalized incoming payment. PayerKey is the lowercased,
// trimmed identity derived from the statement description; it may be empty
// when the source row carried no description.
type PaymentRecord struct {
	PayerKey string  `json:"payer_key"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// TenantRecord is a normalized tenant row. PayerKey is the lowercased value
// of the tenant's declared payment alias ("Pays as" column). Display fields
// default to empty strings when absent from every known alias column.
type TenantRecord struct {
	PayerKey     string  `json:"payer_key"`
	ExpectedRent float64 `json:"expected_rent"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Apt          string  `json:"apt"`
	RoomNo       string  `json:"room_no"`
}
