package collector

import (
	"log"
	"time"

	"IndexFeed/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string][]model.Point // keyed by ticker
	Errs   map[string]error         // per-ticker forced failures
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(ticker string, _, _ time.Time) ([]model.Point, error) {
	if err, ok := m.Errs[ticker]; ok {
		return nil, err
	}
	return m.Series[ticker], nil
}

// GenerateMockPoints builds a gapless daily series of count points ending today.
func GenerateMockPoints(basePrice float64, count int) []model.Point {
	points := make([]model.Point, count)
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		points[i] = model.Point{
			Date:  today.AddDate(0, 0, -(count - 1 - i)),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return points
}

// Collector fetches the raw series for every configured symbol.
type Collector struct {
	Fetcher   Fetcher
	Tickers   map[string]string // logical symbol -> provider ticker
	YearsBack int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, tickers map[string]string, yearsBack int) *Collector {
	return &Collector{Fetcher: fetcher, Tickers: tickers, YearsBack: yearsBack}
}

// Collect fetches each symbol sequentially over the trailing window.
// A failed symbol is logged and omitted; the remaining symbols still fetch.
func (c *Collector) Collect() map[string]*model.RawSeries {
	end := time.Now()
	start := end.AddDate(0, 0, -c.YearsBack*365)
	log.Printf("[INFO] fetch window: %s ~ %s", start.Format("2006-01-02"), end.Format("2006-01-02"))

	series := make(map[string]*model.RawSeries, len(c.Tickers))
	for _, sym := range model.Symbols {
		ticker, ok := c.Tickers[sym]
		if !ok {
			continue
		}
		log.Printf("[INFO] fetching %s (%s)...", sym, ticker)
		points, err := c.Fetcher.FetchDailyCloses(ticker, start, end)
		if err != nil {
			log.Printf("[WARN] fetch %s (%s) failed: %v", sym, ticker, err)
			continue
		}
		if len(points) == 0 {
			log.Printf("[WARN] fetch %s (%s): no data", sym, ticker)
			continue
		}
		series[sym] = &model.RawSeries{
			Symbol:    sym,
			Ticker:    ticker,
			Points:    points,
			FetchedAt: time.Now(),
		}
		log.Printf("[INFO]   %d records (%s ~ %s)", len(points),
			points[0].Date.Format("2006-01-02"),
			points[len(points)-1].Date.Format("2006-01-02"))
	}
	return series
}
