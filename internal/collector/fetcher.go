package collector

import (
	"time"

	"IndexFeed/internal/model"
)

// Fetcher defines the interface for fetching one raw daily close series.
type Fetcher interface {
	FetchDailyCloses(ticker string, start, end time.Time) ([]model.Point, error)
	Name() string
}
