package quote

import (
	"math"
	"testing"
)

const samplePage = `
<html><body>
  <fin-streamer data-field="regularMarketPrice" data-value="54.56">54.56</fin-streamer>
  <table>
    <tr><td>Forward Dividend &amp; Yield</td>
        <td data-test="DIVIDEND_AND_YIELD-value">3.60 (6.60%)</td></tr>
  </table>
</body></html>`

func TestParseQuoteHTML(t *testing.T) {
	q, err := ParseQuoteHTML(samplePage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(q.Price-54.56) > 1e-9 {
		t.Errorf("price = %f, want 54.56", q.Price)
	}
	if math.Abs(q.Dividend-3.60) > 1e-9 {
		t.Errorf("dividend = %f, want 3.60", q.Dividend)
	}
}

func TestParseQuoteHTMLNoDividend(t *testing.T) {
	page := `
<html><body>
  <fin-streamer data-field="regularMarketPrice" data-value="1,234.50"></fin-streamer>
  <td data-test="DIVIDEND_AND_YIELD-value">N/A (N/A)</td>
</body></html>`
	q, err := ParseQuoteHTML(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(q.Price-1234.50) > 1e-9 {
		t.Errorf("price = %f, want 1234.50 (comma stripped)", q.Price)
	}
	if q.Dividend != 0 {
		t.Errorf("dividend = %f, want 0 for N/A", q.Dividend)
	}
}

func TestParseQuoteHTMLMissingPrice(t *testing.T) {
	if _, err := ParseQuoteHTML("<html><body><p>maintenance</p></body></html>"); err == nil {
		t.Error("expected an error when the price element is absent")
	}
}
