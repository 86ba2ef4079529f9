// Package validate provides input sanitization for the growth
// calculator. It is deliberately separate from the model: callers run
// CheckInputs first and only invoke growth.Compute on a clean map.
// These functions can be called from tests, API handlers, or CLI code.
package validate

import (
	"fmt"

	"implied_growth/pkg/core/growth"
)

// Field keys used in validation error maps. The frontend maps these
// onto the corresponding form fields.
const (
	FieldMarketPrice      = "market_price"
	FieldDividendAmount   = "dividend_amount"
	FieldRequiredReturn   = "required_return"
	FieldExpectedDividend = "expected_dividend"
	FieldGrowthRate       = "growth_rate"
)

// Limits holds the practical input ranges. The hard bounds (positive
// price, positive required return, non-negative dividends) are enforced
// unconditionally; these ranges only narrow what the UI accepts.
type Limits struct {
	MarketPriceMin    float64 `yaml:"market_price_min"`
	MarketPriceMax    float64 `yaml:"market_price_max"`
	DividendMax       float64 `yaml:"dividend_max"`
	RequiredReturnMax float64 `yaml:"required_return_max"`
}

// DefaultLimits returns the documented practical ranges: price 1-500,
// dividends 0-50, required return 0-25%.
func DefaultLimits() Limits {
	return Limits{
		MarketPriceMin:    1,
		MarketPriceMax:    500,
		DividendMax:       50,
		RequiredReturnMax: 25,
	}
}

// ApplyDefaults fills zero-valued fields after a partial YAML load.
func (l *Limits) ApplyDefaults() {
	d := DefaultLimits()
	if l.MarketPriceMin == 0 {
		l.MarketPriceMin = d.MarketPriceMin
	}
	if l.MarketPriceMax == 0 {
		l.MarketPriceMax = d.MarketPriceMax
	}
	if l.DividendMax == 0 {
		l.DividendMax = d.DividendMax
	}
	if l.RequiredReturnMax == 0 {
		l.RequiredReturnMax = d.RequiredReturnMax
	}
}

// CheckInputs validates the four raw inputs against hard bounds and the
// configured practical ranges. It returns a field -> message map; an
// empty map means the inputs are safe to feed into growth.Compute.
// Range violations block computation entirely (the model divides by the
// market price, so zero must never reach it).
func CheckInputs(in growth.Input, limits Limits) map[string]string {
	errs := make(map[string]string)

	switch {
	case in.MarketPrice <= 0:
		errs[FieldMarketPrice] = "market price must be greater than zero"
	case in.MarketPrice < limits.MarketPriceMin || in.MarketPrice > limits.MarketPriceMax:
		errs[FieldMarketPrice] = fmt.Sprintf("market price must be between %.2f and %.2f", limits.MarketPriceMin, limits.MarketPriceMax)
	}

	switch {
	case in.DividendAmount < 0:
		errs[FieldDividendAmount] = "current dividend cannot be negative"
	case in.DividendAmount > limits.DividendMax:
		errs[FieldDividendAmount] = fmt.Sprintf("current dividend must be at most %.2f", limits.DividendMax)
	}

	switch {
	case in.RequiredReturnPercent <= 0:
		errs[FieldRequiredReturn] = "required return must be greater than zero"
	case in.RequiredReturnPercent > limits.RequiredReturnMax:
		errs[FieldRequiredReturn] = fmt.Sprintf("required return must be at most %.2f%%", limits.RequiredReturnMax)
	}

	switch {
	case in.ExpectedDividend < 0:
		errs[FieldExpectedDividend] = "expected dividend cannot be negative"
	case in.ExpectedDividend > limits.DividendMax:
		errs[FieldExpectedDividend] = fmt.Sprintf("expected dividend must be at most %.2f", limits.DividendMax)
	}

	return errs
}

// CheckDerived reports the derived-invalidity conditions on a computed
// result: implied growth at or above the required return (perpetuity
// diverges) or below zero. These are warnings, not field errors: the
// result is already computed and flagged IsValid=false, and callers
// display the message instead of the headline figures.
func CheckDerived(in growth.Input, res growth.Result) map[string]string {
	if res.IsValid {
		return nil
	}

	warns := make(map[string]string)
	g := res.ImpliedGrowthPercent / 100
	r := in.RequiredReturnPercent / 100
	if g >= r {
		warns[FieldGrowthRate] = fmt.Sprintf(
			"implied growth (%.2f%%) is not below the required return (%.2f%%); the model diverges",
			res.ImpliedGrowthPercent, in.RequiredReturnPercent)
	} else {
		warns[FieldGrowthRate] = fmt.Sprintf(
			"implied growth is negative (%.2f%%); the model treats a declining dividend as out of scope",
			res.ImpliedGrowthPercent)
	}
	return warns
}
