package growth

import "math"

// ProjectionYears is the horizon of the cash flow projection (years 1..N,
// plus the year-0 purchase row).
const ProjectionYears = 10

// D1Tolerance is the absolute tolerance (in currency units) used when
// comparing the user-supplied next-year dividend against the dividend
// implied by D0 and the solved growth rate.
const D1Tolerance = 0.01

// Input holds the four scalars of the Gordon Growth back-solve.
// Range checking lives in pkg/core/validate; Compute assumes callers
// rejected a zero or negative market price beforehand.
type Input struct {
	MarketPrice           float64 `json:"market_price"`      // P, price per share
	DividendAmount        float64 `json:"dividend_amount"`   // D0, trailing annual dividend
	RequiredReturnPercent float64 `json:"required_return"`   // r, as a percentage (7.4 = 7.4%)
	ExpectedDividend      float64 `json:"expected_dividend"` // D1, next year's expected dividend
}

// CashflowPoint is one row of the holder's cash flow projection.
// Year 0 carries the purchase outflow, years 1..10 carry dividends.
type CashflowPoint struct {
	Year       int     `json:"year"`
	Dividend   float64 `json:"dividend"`
	Investment float64 `json:"investment"`
	Total      float64 `json:"total"`
}

// Result holds the solved growth rate and everything derived from it.
type Result struct {
	ImpliedGrowthPercent float64         `json:"implied_growth_percent"`
	Cashflows            []CashflowPoint `json:"cashflows"`
	D1Consistent         bool            `json:"d1_consistent"`
	CalculatedD1         float64         `json:"calculated_d1"`
	IsValid              bool            `json:"is_valid"`
}

// Compute back-solves the Gordon Growth Model P = D1/(r-g) for g and
// projects the resulting dividend stream over ten years.
//
// It is a pure function and never fails: out-of-domain inputs yield a
// well-formed Result with IsValid=false, which callers should surface
// as a warning rather than a hard error. IsValid requires the implied
// growth to sit in [0, r): at g >= r the perpetuity diverges, and a
// negative implied growth is treated as degenerate for this model's
// intended use (kept as documented behavior, not a judgment call here).
func Compute(in Input) Result {
	r := in.RequiredReturnPercent / 100.0
	g := r - in.ExpectedDividend/in.MarketPrice

	calculatedD1 := in.DividendAmount * (1 + g)

	res := Result{
		ImpliedGrowthPercent: g * 100.0,
		CalculatedD1:         calculatedD1,
		D1Consistent:         math.Abs(in.ExpectedDividend-calculatedD1) < D1Tolerance,
		IsValid:              g < r && g >= 0,
		Cashflows:            projectCashflows(in.MarketPrice, in.DividendAmount, g),
	}
	return res
}

// projectCashflows builds the 11-row projection: year 0 is the share
// purchase (negative investment, no dividend), years 1..10 grow D0 at g.
func projectCashflows(price, d0, g float64) []CashflowPoint {
	flows := make([]CashflowPoint, 0, ProjectionYears+1)

	flows = append(flows, CashflowPoint{
		Year:       0,
		Dividend:   0,
		Investment: -price,
		Total:      -price,
	})

	for year := 1; year <= ProjectionYears; year++ {
		div := d0 * math.Pow(1+g, float64(year))
		flows = append(flows, CashflowPoint{
			Year:     year,
			Dividend: div,
			Total:    div,
		})
	}
	return flows
}
