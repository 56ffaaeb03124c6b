package exporter

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"IndexFeed/internal/model"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func sampleTable() *model.Table {
	return &model.Table{Rows: []model.Row{
		{Date: day(1), ACWI: 15000.336, Fang: 30000.554, Nikkei: 33464.17, USDJPY: 150.12},
		{Date: day(2), ACWI: 15100.004, Fang: 30100.999, Nikkei: 33539.62, USDJPY: 150.55},
	}}
}

func TestBuildDocument_Metadata(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	doc := BuildDocument(sampleTable(), now)

	if doc.Metadata.StartDate != "2024-01-01" {
		t.Errorf("expected start_date 2024-01-01, got %s", doc.Metadata.StartDate)
	}
	if doc.Metadata.EndDate != "2024-01-02" {
		t.Errorf("expected end_date 2024-01-02, got %s", doc.Metadata.EndDate)
	}
	if doc.Metadata.TotalRecords != 2 {
		t.Errorf("expected 2 records, got %d", doc.Metadata.TotalRecords)
	}
	if _, err := time.Parse(time.RFC3339, doc.Metadata.GeneratedAt); err != nil {
		t.Errorf("generated_at not RFC3339: %v", err)
	}
	for _, sym := range model.Symbols {
		if doc.Metadata.Description[sym] == "" {
			t.Errorf("missing description for %s", sym)
		}
	}
}

func TestBuildDocument_RoundsToTwoDecimals(t *testing.T) {
	doc := BuildDocument(sampleTable(), time.Now())

	if got := *doc.Data[0].ACWI; got != 15000.34 {
		t.Errorf("expected 15000.34, got %v", got)
	}
	if got := *doc.Data[0].Fang; got != 30000.55 {
		t.Errorf("expected 30000.55, got %v", got)
	}
	if got := *doc.Data[1].ACWI; got != 15100.0 {
		t.Errorf("expected 15100.0, got %v", got)
	}
	if got := *doc.Data[1].Fang; got != 30101.0 {
		t.Errorf("expected 30101.0, got %v", got)
	}
}

func TestBuildDocument_MissingValueBecomesNull(t *testing.T) {
	table := sampleTable()
	table.Rows[1].Fang = math.NaN()
	doc := BuildDocument(table, time.Now())

	if doc.Data[1].Fang != nil {
		t.Fatalf("expected nil for NaN value, got %v", *doc.Data[1].Fang)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Contains(raw, []byte(`"fang":null`)) {
		t.Error("expected NaN field to serialize as null")
	}
}

func TestBuildDocument_RoundTrip(t *testing.T) {
	table := sampleTable()
	raw, err := json.Marshal(BuildDocument(table, time.Now()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var parsed model.Document
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(parsed.Data) != table.Len() {
		t.Fatalf("expected %d records, got %d", table.Len(), len(parsed.Data))
	}
	for i, rec := range parsed.Data {
		if rec.Date != table.Rows[i].Date.Format("2006-01-02") {
			t.Errorf("record %d: date %s", i, rec.Date)
		}
		want := math.Round(table.Rows[i].Nikkei*100) / 100
		if *rec.Nikkei != want {
			t.Errorf("record %d: expected nikkei %v, got %v", i, want, *rec.Nikkei)
		}
	}
}

func TestBuildDocument_DataIsDeterministic(t *testing.T) {
	table := sampleTable()
	a, err := json.Marshal(BuildDocument(table, time.Now()).Data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(BuildDocument(table, time.Now()).Data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("expected identical data arrays across runs")
	}
}

func TestSave_CreatesDirAndWritesUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "index_data.json")
	doc := BuildDocument(sampleTable(), time.Now())

	if err := Save(doc, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(raw, []byte("日経平均株価")) {
		t.Error("expected non-ASCII description preserved unescaped")
	}
	if !bytes.Contains(raw, []byte("\n  ")) {
		t.Error("expected indented output")
	}

	var parsed model.Document
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal written file: %v", err)
	}
	if parsed.Metadata.TotalRecords != 2 {
		t.Errorf("expected 2 records, got %d", parsed.Metadata.TotalRecords)
	}

	// Overwrites on a second save.
	if err := Save(doc, path); err != nil {
		t.Fatalf("second save: %v", err)
	}
}
