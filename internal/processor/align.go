package processor

import (
	"math"
	"sort"
	"time"

	"IndexFeed/internal/model"
)

// unionIndex returns the sorted, deduplicated set of dates appearing in any series.
func unionIndex(series map[string]*model.RawSeries) []time.Time {
	seen := make(map[time.Time]bool)
	var index []time.Time
	for _, s := range series {
		for _, p := range s.Points {
			if !seen[p.Date] {
				seen[p.Date] = true
				index = append(index, p.Date)
			}
		}
	}
	sort.Slice(index, func(i, j int) bool { return index[i].Before(index[j]) })
	return index
}

// forwardFill projects one series onto the index, carrying the last known
// value through gaps. Dates before the first observation stay NaN; there is
// no backward fill.
func forwardFill(points []model.Point, index []time.Time) []float64 {
	vals := make([]float64, len(index))
	last := math.NaN()
	j := 0
	for i, d := range index {
		for j < len(points) && !points[j].Date.After(d) {
			last = points[j].Close
			j++
		}
		vals[i] = last
	}
	return vals
}
