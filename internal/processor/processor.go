// Package processor aligns the raw series onto a common daily calendar and
// converts dollar-quoted series into yen.
package processor

import (
	"fmt"
	"math"

	"IndexFeed/internal/model"
)

// Process merges the four raw series on the union of their dates,
// forward-fills gaps, converts acwi and fang into yen via the usdjpy rate,
// and drops any date where a field is still missing.
func Process(series map[string]*model.RawSeries) (*model.Table, error) {
	for _, sym := range model.Symbols {
		s, ok := series[sym]
		if !ok || len(s.Points) == 0 {
			return nil, fmt.Errorf("series %s is missing or empty", sym)
		}
	}

	index := unionIndex(series)
	acwi := forwardFill(series[model.SymbolACWI].Points, index)
	fang := forwardFill(series[model.SymbolFang].Points, index)
	nikkei := forwardFill(series[model.SymbolNikkei].Points, index)
	usdjpy := forwardFill(series[model.SymbolUSDJPY].Points, index)

	table := &model.Table{Rows: make([]model.Row, 0, len(index))}
	for i, d := range index {
		row := model.Row{
			Date:   d,
			ACWI:   acwi[i] * usdjpy[i],
			Fang:   fang[i] * usdjpy[i],
			Nikkei: nikkei[i], // already in yen
			USDJPY: usdjpy[i],
		}
		if math.IsNaN(row.ACWI) || math.IsNaN(row.Fang) || math.IsNaN(row.Nikkei) || math.IsNaN(row.USDJPY) {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("no complete rows after alignment")
	}
	return table, nil
}
