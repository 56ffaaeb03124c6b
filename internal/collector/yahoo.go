package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"IndexFeed/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: "https://query1.finance.yahoo.com",
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open  []*float64 `json:"open"`
			High  []*float64 `json:"high"`
			Low   []*float64 `json:"low"`
			Close []*float64 `json:"close"`
		} `json:"quote"`
		Adjclose []struct {
			Adjclose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// closeColumn identifies which response column supplies closing prices.
// It is resolved once per response instead of probing value by value.
type closeColumn int

const (
	adjustedClose  closeColumn = iota // indicators.adjclose is populated
	rawClose                          // plain quote close
	firstAvailable                    // neither close exists; first populated quote column
)

// resolveColumn picks the price column for a chart result: adjusted close
// when the provider offers it, plain close otherwise, and as a last resort
// whichever quote column is populated.
func resolveColumn(res *chartResult) (closeColumn, error) {
	if len(res.Indicators.Adjclose) > 0 && len(res.Indicators.Adjclose[0].Adjclose) > 0 {
		return adjustedClose, nil
	}
	if len(res.Indicators.Quote) == 0 {
		return 0, fmt.Errorf("yahoo: no quote block in response")
	}
	q := res.Indicators.Quote[0]
	if len(q.Close) > 0 {
		return rawClose, nil
	}
	if len(q.Open) > 0 || len(q.High) > 0 || len(q.Low) > 0 {
		return firstAvailable, nil
	}
	return 0, fmt.Errorf("yahoo: no usable price column in response")
}

// closes returns the value slice selected by col.
func (res *chartResult) closes(col closeColumn) []*float64 {
	switch col {
	case adjustedClose:
		return res.Indicators.Adjclose[0].Adjclose
	case rawClose:
		return res.Indicators.Quote[0].Close
	default:
		q := res.Indicators.Quote[0]
		if len(q.Open) > 0 {
			return q.Open
		}
		if len(q.High) > 0 {
			return q.High
		}
		return q.Low
	}
}

// FetchDailyCloses retrieves daily closing prices for the ticker over [start, end].
func (f *YahooFetcher) FetchDailyCloses(ticker string, start, end time.Time) ([]model.Point, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d&includeAdjustedClose=true",
		f.BaseURL, url.PathEscape(ticker), start.Unix(), end.Unix())

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	return parseChart(body)
}

// parseChart decodes a chart API response into daily closing points.
func parseChart(body []byte) ([]model.Point, error) {
	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	col, err := resolveColumn(&result)
	if err != nil {
		return nil, err
	}
	values := result.closes(col)

	points := make([]model.Point, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(values) || values[i] == nil {
			continue // null bars (holidays etc.)
		}
		points = append(points, model.Point{
			Date:  dayOf(time.Unix(ts, 0).UTC()),
			Close: *values[i],
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return dedupeByDate(points), nil
}

// dayOf truncates t to midnight UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dedupeByDate keeps the last observation when a date appears twice
// (the provider repeats the current day while the market is open).
func dedupeByDate(points []model.Point) []model.Point {
	out := points[:0]
	for _, p := range points {
		if n := len(out); n > 0 && out[n-1].Date.Equal(p.Date) {
			out[n-1] = p
			continue
		}
		out = append(out, p)
	}
	return out
}
