package growth

import (
	"fmt"
	"strings"
)

// FormatCurrency renders a value as a dollar amount with two decimals,
// e.g. 3.6355 -> "$3.64".
func FormatCurrency(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatPercent renders a fraction-of-100 value with two decimals,
// e.g. 0.987 -> "0.99%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Explain builds the markdown explanation shown beside the chart: the
// rearranged formula, the substituted values, and the consistency and
// validity notes. It mirrors the three-tier messaging of the error
// policy: consistency mismatches are informational, derived invalidity
// is a warning, neither is fatal.
func Explain(in Input, res Result) string {
	var b strings.Builder

	g := res.ImpliedGrowthPercent / 100.0
	r := in.RequiredReturnPercent / 100.0

	b.WriteString("## Implied Growth Rate\n\n")
	b.WriteString("The Gordon Growth Model prices a stock as `P = D1 / (r - g)`. ")
	b.WriteString("Solving for growth: `g = r - D1 / P`.\n\n")

	fmt.Fprintf(&b, "- Required return (r): %s\n", FormatPercent(in.RequiredReturnPercent))
	fmt.Fprintf(&b, "- Expected dividend (D1): %s\n", FormatCurrency(in.ExpectedDividend))
	fmt.Fprintf(&b, "- Market price (P): %s\n", FormatCurrency(in.MarketPrice))
	fmt.Fprintf(&b, "\n`g = %.4f - %s / %s = %.4f` (**%s**)\n",
		r, FormatCurrency(in.ExpectedDividend), FormatCurrency(in.MarketPrice),
		g, FormatPercent(res.ImpliedGrowthPercent))

	b.WriteString("\n### Dividend consistency\n\n")
	if res.D1Consistent {
		fmt.Fprintf(&b, "Your expected dividend of %s matches the %s implied by growing the current dividend at %s.\n",
			FormatCurrency(in.ExpectedDividend), FormatCurrency(res.CalculatedD1),
			FormatPercent(res.ImpliedGrowthPercent))
	} else {
		fmt.Fprintf(&b, "Note: growing the current dividend of %s at %s implies a next-year dividend of %s, not the %s you entered.\n",
			FormatCurrency(in.DividendAmount), FormatPercent(res.ImpliedGrowthPercent),
			FormatCurrency(res.CalculatedD1), FormatCurrency(in.ExpectedDividend))
	}

	if !res.IsValid {
		b.WriteString("\n### Warning\n\n")
		if g >= r {
			b.WriteString("The implied growth rate meets or exceeds the required return, so the perpetuity formula diverges. The figures above are shown for reference only.\n")
		} else {
			b.WriteString("The implied growth rate is negative. This model treats a shrinking dividend as a degenerate result; the figures above are shown for reference only.\n")
		}
	}

	return b.String()
}
