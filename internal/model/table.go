package model

import "time"

// Row is one aligned day across all four series, in yen.
// A NaN value marks a field that is still missing.
type Row struct {
	Date   time.Time
	ACWI   float64
	Fang   float64
	Nikkei float64
	USDJPY float64
}

// Value returns the field for the given logical symbol name.
func (r Row) Value(symbol string) float64 {
	switch symbol {
	case SymbolACWI:
		return r.ACWI
	case SymbolFang:
		return r.Fang
	case SymbolNikkei:
		return r.Nikkei
	case SymbolUSDJPY:
		return r.USDJPY
	}
	return 0
}

// Table is the aligned, converted daily table.
// Rows are strictly ascending by date with no duplicates.
type Table struct {
	Rows []Row
}

func (t *Table) Len() int { return len(t.Rows) }

// Start returns the first date in the table.
func (t *Table) Start() time.Time { return t.Rows[0].Date }

// End returns the last date in the table.
func (t *Table) End() time.Time { return t.Rows[len(t.Rows)-1].Date }
