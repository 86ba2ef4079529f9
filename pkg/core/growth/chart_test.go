package growth

import "testing"

func TestBuildChartRows(t *testing.T) {
	in := Input{
		MarketPrice:           54.56,
		DividendAmount:        3.60,
		RequiredReturnPercent: 7.40,
		ExpectedDividend:      3.50,
	}
	res := Compute(in)
	rows := BuildChartRows(res)

	if len(rows) != len(res.Cashflows) {
		t.Fatalf("expected %d chart rows, got %d", len(res.Cashflows), len(rows))
	}

	if rows[0].YearLabel != "Year 0" {
		t.Errorf("first label = %q, want \"Year 0\"", rows[0].YearLabel)
	}
	if rows[10].YearLabel != "Year 10" {
		t.Errorf("last label = %q, want \"Year 10\"", rows[10].YearLabel)
	}
	if rows[0].InvestmentFlow != -in.MarketPrice {
		t.Errorf("year 0 investment flow = %f, want %f", rows[0].InvestmentFlow, -in.MarketPrice)
	}

	for i, row := range rows {
		if row.GrowthLine != res.ImpliedGrowthPercent {
			t.Errorf("row %d growth line = %f, want constant %f", i, row.GrowthLine, res.ImpliedGrowthPercent)
		}
		if row.DividendFlow != res.Cashflows[i].Dividend {
			t.Errorf("row %d dividend flow mismatch", i)
		}
	}
}
