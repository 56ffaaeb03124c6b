// Package scheduler wires the pipeline stages together and optionally
// re-runs them on a cron schedule.
package scheduler

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"IndexFeed/internal/collector"
	"IndexFeed/internal/config"
	"IndexFeed/internal/exporter"
	"IndexFeed/internal/model"
	"IndexFeed/internal/processor"
	"IndexFeed/internal/recorder"
	"IndexFeed/internal/reporter"
)

// Scheduler runs the fetch pipeline, once or periodically.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Config    *config.Config
	Recorder  recorder.Recorder
}

// NewScheduler creates a new Scheduler.
func NewScheduler(col *collector.Collector, cfg *config.Config, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Config:    cfg,
		Recorder:  rec,
	}
}

// RunOnce executes fetch -> process -> save -> summarize.
// When fewer than the full symbol set is fetched the run is aborted:
// an error is logged, no file is written, and nil is returned.
func (s *Scheduler) RunOnce() error {
	raw := s.Collector.Collect()

	for _, sym := range model.Symbols {
		srs, ok := raw[sym]
		if !ok {
			continue
		}
		evt := &recorder.FetchEvent{
			Symbol:  srs.Symbol,
			Ticker:  srs.Ticker,
			Records: len(srs.Points),
			First:   srs.Points[0].Date.Format("2006-01-02"),
			Last:    srs.Points[len(srs.Points)-1].Date.Format("2006-01-02"),
		}
		if err := s.Recorder.RecordFetch(evt); err != nil {
			log.Printf("[WARN] record fetch %s: %v", sym, err)
		}
	}

	if len(raw) < len(model.Symbols) {
		log.Printf("[ERROR] only %d of %d symbols fetched, aborting run", len(raw), len(model.Symbols))
		return nil
	}

	log.Println("[INFO] processing data...")
	table, err := processor.Process(raw)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}
	log.Printf("[INFO]   %d aligned records", table.Len())

	doc := exporter.BuildDocument(table, time.Now())
	path := s.Config.OutputPath()
	if err := exporter.Save(doc, path); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if err := s.Recorder.RecordRun(&recorder.RunSnapshot{
		StartDate:    doc.Metadata.StartDate,
		EndDate:      doc.Metadata.EndDate,
		TotalRecords: doc.Metadata.TotalRecords,
		OutputPath:   path,
	}); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}

	fmt.Print(reporter.FormatSummary(table))
	if abs, err := filepath.Abs(path); err == nil {
		log.Printf("[INFO] done, output: %s", abs)
	}
	return nil
}

// Register schedules periodic refresh runs on the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	_, err := s.Cron.AddFunc(refreshCron, func() {
		if err := s.RunOnce(); err != nil {
			log.Printf("[ERROR] scheduled run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}
