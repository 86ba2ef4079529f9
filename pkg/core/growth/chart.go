package growth

import "fmt"

// ChartRow is the chart-ready shape of one projection row, as consumed
// by the dual-axis bar/line chart in the frontend: dividend and
// investment bars on the currency axis, a flat implied-growth reference
// line on the percentage axis.
type ChartRow struct {
	YearLabel      string  `json:"year_label"`
	DividendFlow   float64 `json:"dividend_flow"`
	InvestmentFlow float64 `json:"investment_flow"`
	GrowthLine     float64 `json:"growth_line"`
}

// BuildChartRows maps a Result's cashflows into chart rows. The growth
// line repeats ImpliedGrowthPercent on every row so the chart can draw
// it as a constant reference across the projection.
func BuildChartRows(res Result) []ChartRow {
	rows := make([]ChartRow, 0, len(res.Cashflows))
	for _, cf := range res.Cashflows {
		rows = append(rows, ChartRow{
			YearLabel:      fmt.Sprintf("Year %d", cf.Year),
			DividendFlow:   cf.Dividend,
			InvestmentFlow: cf.Investment,
			GrowthLine:     res.ImpliedGrowthPercent,
		})
	}
	return rows
}
