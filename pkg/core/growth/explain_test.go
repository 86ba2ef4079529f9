package growth

import (
	"strings"
	"testing"

	"implied_growth/pkg/core/utils"
)

func TestFormatters(t *testing.T) {
	if got := FormatCurrency(3.6355); got != "$3.64" {
		t.Errorf("FormatCurrency(3.6355) = %q", got)
	}
	if got := FormatCurrency(-54.56); got != "-$54.56" {
		t.Errorf("FormatCurrency(-54.56) = %q", got)
	}
	if got := FormatPercent(0.987); got != "0.99%" {
		t.Errorf("FormatPercent(0.987) = %q", got)
	}
}

func TestExplainConsistencyNote(t *testing.T) {
	in := Input{
		MarketPrice:           54.56,
		DividendAmount:        3.60,
		RequiredReturnPercent: 7.40,
		ExpectedDividend:      3.50,
	}
	res := Compute(in)
	text := Explain(in, res)

	if !strings.Contains(text, "g = r - D1 / P") {
		t.Error("explanation should state the rearranged formula")
	}
	// D1 is off by ~0.14, so the mismatch note must appear
	if !strings.Contains(text, "not the $3.50 you entered") {
		t.Errorf("expected mismatch note, got:\n%s", text)
	}
	if strings.Contains(text, "### Warning") {
		t.Error("valid result should not carry a warning section")
	}
	if !utils.ValidateMarkdown(text) {
		t.Error("explanation must be parseable markdown")
	}
}

func TestExplainInvalidWarning(t *testing.T) {
	in := Input{
		MarketPrice:           40,
		DividendAmount:        4,
		RequiredReturnPercent: 5,
		ExpectedDividend:      4,
	}
	res := Compute(in)
	text := Explain(in, res)

	if !strings.Contains(text, "### Warning") {
		t.Error("invalid result must carry a warning section")
	}
	if !strings.Contains(text, "negative") {
		t.Error("g < 0 warning should name the negative growth case")
	}
}
