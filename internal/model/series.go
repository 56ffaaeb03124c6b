package model

import "time"

// Logical names of the four series the pipeline produces.
const (
	SymbolACWI   = "acwi"
	SymbolFang   = "fang"
	SymbolNikkei = "nikkei"
	SymbolUSDJPY = "usdjpy"
)

// Symbols lists the four logical series names in output order.
var Symbols = []string{SymbolACWI, SymbolFang, SymbolNikkei, SymbolUSDJPY}

// Point is a single daily closing observation.
type Point struct {
	Date  time.Time
	Close float64
}

// RawSeries holds the daily closes fetched for one symbol.
// Points are ascending by date with no duplicates; immutable after fetch.
type RawSeries struct {
	Symbol    string
	Ticker    string
	Points    []Point
	FetchedAt time.Time
}
