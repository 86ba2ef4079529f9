// Package quote fetches current price and trailing dividend for a
// ticker by scraping a quote page. The frontend uses it to prefill the
// calculator inputs; every value is still editable and re-validated.
package quote

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	userAgent    = "ImpliedGrowth Calculator contact@impliedgrowth.dev"
	quotePageURL = "https://finance.yahoo.com/quote/%s"
)

// Quote holds the scraped prefill values. Dividend may be zero for
// non-paying stocks; Price is always positive on success.
type Quote struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Dividend float64 `json:"dividend"` // trailing annual dividend per share
}

// Fetcher scrapes quote pages with a shared HTTP client.
type Fetcher struct {
	client  *http.Client
	baseURL string // format string with one %s for the symbol
}

// NewFetcher creates a fetcher against the default quote page.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: quotePageURL,
	}
}

// NewFetcherWithBase creates a fetcher against a custom page URL
// template, used by tests and self-hosted mirrors.
func NewFetcherWithBase(base string) *Fetcher {
	f := NewFetcher()
	f.baseURL = base
	return f
}

// Fetch downloads and parses the quote page for a symbol.
func (f *Fetcher) Fetch(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	url := fmt.Sprintf(f.baseURL, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build quote request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quote page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote page returned status %d for %s", resp.StatusCode, symbol)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse quote page: %w", err)
	}

	q, err := parseQuoteDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("extract quote for %s: %w", symbol, err)
	}
	q.Symbol = symbol
	return q, nil
}

// ParseQuoteHTML extracts a quote from raw page HTML. Split out from
// Fetch so parsing is testable without network access.
func ParseQuoteHTML(html string) (*Quote, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse quote html: %w", err)
	}
	return parseQuoteDocument(doc)
}

func parseQuoteDocument(doc *goquery.Document) (*Quote, error) {
	q := &Quote{}

	// Price: streamer element carries the numeric value in data-value.
	priceSel := doc.Find(`fin-streamer[data-field="regularMarketPrice"]`).First()
	if priceSel.Length() == 0 {
		return nil, fmt.Errorf("price element not found")
	}
	priceStr, ok := priceSel.Attr("data-value")
	if !ok {
		priceStr = priceSel.Text()
	}
	price, err := parseNumber(priceStr)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", priceStr, err)
	}
	if price <= 0 {
		return nil, fmt.Errorf("non-positive price %f", price)
	}
	q.Price = price

	// Dividend: the summary table lists "Forward Dividend & Yield" as
	// e.g. "3.60 (2.45%)". Missing or "N/A" means no dividend.
	doc.Find(`td[data-test="DIVIDEND_AND_YIELD-value"]`).Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "N/A") {
			return
		}
		if idx := strings.Index(text, " "); idx > 0 {
			text = text[:idx]
		}
		if div, err := parseNumber(text); err == nil && div >= 0 {
			q.Dividend = div
		}
	})

	return q, nil
}

// parseNumber handles thousands separators in displayed values.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return strconv.ParseFloat(s, 64)
}
