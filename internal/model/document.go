package model

// Metadata describes one generated output document.
type Metadata struct {
	GeneratedAt  string            `json:"generated_at"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	TotalRecords int               `json:"total_records"`
	Description  map[string]string `json:"description"`
}

// Record is one per-day entry in the output document.
// Nil fields serialize as null.
type Record struct {
	Date   string   `json:"date"`
	ACWI   *float64 `json:"acwi"`
	Fang   *float64 `json:"fang"`
	Nikkei *float64 `json:"nikkei"`
	USDJPY *float64 `json:"usdjpy"`
}

// Document is the persisted output consumed by the investment simulator.
// Constructed once, written once, never mutated after write.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Data     []Record `json:"data"`
}
