package utils

import (
	"math"
	"testing"
)

type scenarioDoc struct {
	Name        string  `json:"name"`
	MarketPrice float64 `json:"market_price"`
}

func TestSmartParseStrictJSON(t *testing.T) {
	var doc scenarioDoc
	if err := SmartParse(`{"name":"base","market_price":54.56}`, &doc); err != nil {
		t.Fatalf("strict JSON should parse: %v", err)
	}
	if doc.Name != "base" || doc.MarketPrice != 54.56 {
		t.Errorf("parsed %+v", doc)
	}
}

func TestSmartParseHjson(t *testing.T) {
	input := `{
  # base scenario
  name: base
  market_price: 54.56
}`
	var doc scenarioDoc
	if err := SmartParse(input, &doc); err != nil {
		t.Fatalf("hjson should parse: %v", err)
	}
	// The Hjson path must win over JSON repair: repair "fixes" Hjson by
	// stuffing the rest of the body into the first string field and
	// zeroing the numerics. Both fields must come through intact.
	if doc.Name != "base" {
		t.Errorf("name = %q, want %q", doc.Name, "base")
	}
	if doc.MarketPrice != 54.56 {
		t.Errorf("market_price = %v, want exactly 54.56 (hjson keeps float64 precision)", doc.MarketPrice)
	}
}

func TestSmartParseRepairsBrokenJSON(t *testing.T) {
	// Unclosed object and single quotes: beyond strict JSON, handled by
	// the lenient fallbacks. The repair path parses numbers as float32,
	// so monetary values may carry ~1e-6 rounding noise.
	var doc scenarioDoc
	if err := SmartParse(`{'name': 'base', 'market_price': 54.56`, &doc); err != nil {
		t.Fatalf("repairable JSON should parse: %v", err)
	}
	if doc.Name != "base" {
		t.Errorf("name = %q, want %q", doc.Name, "base")
	}
	if math.Abs(doc.MarketPrice-54.56) > 1e-4 {
		t.Errorf("market_price = %v, want 54.56 within 1e-4", doc.MarketPrice)
	}
}

func TestSmartParseWrongShapeRejected(t *testing.T) {
	// Valid JSON, wrong shape: must error rather than half-populate.
	doc := scenarioDoc{Name: "keep", MarketPrice: 7}
	if err := SmartParse(`"just a string"`, &doc); err == nil {
		t.Fatal("expected an error for a non-object document")
	}
	if doc.Name != "keep" || doc.MarketPrice != 7 {
		t.Errorf("failed parse must not modify the target: %+v", doc)
	}
}

func TestRepairJSON(t *testing.T) {
	repaired, err := RepairJSON(`{name: "base"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc scenarioDoc
	if err := SmartParse(repaired, &doc); err != nil {
		t.Fatalf("repaired output should be valid JSON: %v", err)
	}
	if doc.Name != "base" {
		t.Errorf("parsed %+v", doc)
	}
}

func TestValidateMarkdown(t *testing.T) {
	if !ValidateMarkdown("## Heading\n\nSome **bold** text.") {
		t.Error("plain markdown should validate")
	}
}
