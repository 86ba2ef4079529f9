package quote

import (
	"encoding/json"
	"fmt"
	"net/http"

	"implied_growth/pkg/core/quote"
)

// Handler holds dependencies for the quote prefill endpoint
type Handler struct {
	Fetcher *quote.Fetcher
}

// NewHandler creates a new quote handler
func NewHandler(fetcher *quote.Fetcher) *Handler {
	return &Handler{Fetcher: fetcher}
}

// HandleQuote serves GET /api/quote?symbol=XYZ and returns prefill
// values for the calculator form.
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		http.Error(w, "symbol query parameter is required", http.StatusBadRequest)
		return
	}

	q, err := h.Fetcher.Fetch(r.Context(), symbol)
	if err != nil {
		fmt.Printf("[QUOTE] Lookup failed for %s: %v\n", symbol, err)
		http.Error(w, fmt.Sprintf("quote not found: %s", symbol), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(q)
}
