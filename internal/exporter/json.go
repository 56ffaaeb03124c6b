// Package exporter serializes the aligned table into the JSON document
// consumed by the investment simulator.
package exporter

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"IndexFeed/internal/model"
)

const dateFormat = "2006-01-02"

// Fixed metadata labels for the four output fields.
var descriptions = map[string]string{
	model.SymbolACWI:   "オルカン連動指数（MSCI ACWI）円換算",
	model.SymbolFang:   "FANG+連動指数（NYSE FANG+）円換算",
	model.SymbolNikkei: "日経平均株価",
	model.SymbolUSDJPY: "為替レート（USD/JPY）",
}

// BuildDocument assembles the output document from an aligned table.
func BuildDocument(table *model.Table, now time.Time) *model.Document {
	doc := &model.Document{
		Metadata: model.Metadata{
			GeneratedAt:  now.Format(time.RFC3339),
			StartDate:    table.Start().Format(dateFormat),
			EndDate:      table.End().Format(dateFormat),
			TotalRecords: table.Len(),
			Description:  descriptions,
		},
		Data: make([]model.Record, 0, table.Len()),
	}
	for _, row := range table.Rows {
		doc.Data = append(doc.Data, model.Record{
			Date:   row.Date.Format(dateFormat),
			ACWI:   round2(row.ACWI),
			Fang:   round2(row.Fang),
			Nikkei: round2(row.Nikkei),
			USDJPY: round2(row.USDJPY),
		})
	}
	return doc
}

// round2 rounds to two decimal places. NaN becomes nil so the field
// serializes as null instead of an invalid literal.
func round2(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	r := decimal.NewFromFloat(v).Round(2).InexactFloat64()
	return &r
}

// Save writes the document to path, creating the directory if needed.
// Any prior file at path is overwritten.
func Save(doc *model.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false) // keep the Japanese labels readable
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	log.Printf("[INFO] saved %s", path)
	return nil
}
