package reporter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Rhymond/go-money"

	"IndexFeed/internal/model"
)

// priceSymbols are the series included in the summary; the exchange rate is not.
var priceSymbols = []string{model.SymbolACWI, model.SymbolFang, model.SymbolNikkei}

// SeriesStats holds summary statistics for one series.
type SeriesStats struct {
	Symbol string
	Start  time.Time
	End    time.Time
	Count  int
	Min    float64
	Max    float64
	Latest float64
}

// Summarize computes statistics for one column, ignoring NaN values.
// ok is false when the column has no valid values.
func Summarize(table *model.Table, symbol string) (stats SeriesStats, ok bool) {
	stats = SeriesStats{Symbol: symbol, Min: math.Inf(1), Max: math.Inf(-1)}
	for _, row := range table.Rows {
		v := row.Value(symbol)
		if math.IsNaN(v) {
			continue
		}
		if stats.Count == 0 {
			stats.Start = row.Date
		}
		stats.End = row.Date
		stats.Count++
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		stats.Latest = v
	}
	if stats.Count == 0 {
		return SeriesStats{}, false
	}
	return stats, true
}

// FormatSummary renders the console summary for the three price series.
// A series with no valid values is skipped.
func FormatSummary(table *model.Table) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", 50) + "\n")
	b.WriteString("データサマリー\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")

	for _, sym := range priceSymbols {
		stats, ok := Summarize(table, sym)
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("\n【%s】\n", strings.ToUpper(sym)))
		b.WriteString(fmt.Sprintf("  期間: %s 〜 %s\n",
			stats.Start.Format("2006-01-02"), stats.End.Format("2006-01-02")))
		b.WriteString(fmt.Sprintf("  件数: %d\n", stats.Count))
		b.WriteString(fmt.Sprintf("  最小: %s\n", yen(stats.Min)))
		b.WriteString(fmt.Sprintf("  最大: %s\n", yen(stats.Max)))
		b.WriteString(fmt.Sprintf("  最新: %s\n", yen(stats.Latest)))
	}
	return b.String()
}

// yen renders a value as whole yen with thousands separators.
func yen(v float64) string {
	return money.New(int64(math.Round(v)), money.JPY).Display()
}
