package growth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	coregrowth "implied_growth/pkg/core/growth"
	"implied_growth/pkg/core/store"
	"implied_growth/pkg/core/utils"
	"implied_growth/pkg/core/validate"
)

// Handler holds dependencies for the calculator endpoints
type Handler struct {
	Limits  validate.Limits
	History *store.HistoryRepo
}

// NewHandler creates a new growth handler. History may be backed by a
// nil pool; saving then degrades to a logged warning.
func NewHandler(limits validate.Limits, history *store.HistoryRepo) *Handler {
	return &Handler{Limits: limits, History: history}
}

// ComputeResponse is the full payload for one computation: the model
// result, chart-ready rows, the markdown explanation, and any non-fatal
// warnings keyed by field.
type ComputeResponse struct {
	ID          string                `json:"id,omitempty"`
	Result      coregrowth.Result     `json:"result"`
	Chart       []coregrowth.ChartRow `json:"chart"`
	Explanation string                `json:"explanation"`
	Warnings    map[string]string     `json:"warnings,omitempty"`
}

type errorResponse struct {
	Errors map[string]string `json:"errors"`
}

// Scenario is one named input set in a batch request.
type Scenario struct {
	Name string `json:"name"`
	coregrowth.Input
}

// ScenarioRequest is the batch body. The decoder is lenient: sloppy
// JSON and Hjson bodies are accepted.
type ScenarioRequest struct {
	Scenarios []Scenario `json:"scenarios"`
}

// ScenarioResult pairs a scenario with its outcome. Range-invalid
// scenarios carry Errors instead of a Result.
type ScenarioResult struct {
	Name     string            `json:"name"`
	Errors   map[string]string `json:"errors,omitempty"`
	Response *ComputeResponse  `json:"response,omitempty"`
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleCompute serves POST /api/growth/compute.
func (h *Handler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in coregrowth.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Range violations block computation: the model divides by the price.
	if errs := validate.CheckInputs(in, h.Limits); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(errorResponse{Errors: errs})
		return
	}

	resp := h.compute(r.Context(), in)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// compute runs the model and assembles the response. Derived
// invalidity and consistency mismatches surface as warnings next to the
// computed (and flagged) figures, never as HTTP errors.
func (h *Handler) compute(ctx context.Context, in coregrowth.Input) *ComputeResponse {
	res := coregrowth.Compute(in)

	warnings := validate.CheckDerived(in, res)
	if !res.D1Consistent {
		if warnings == nil {
			warnings = make(map[string]string)
		}
		warnings[validate.FieldExpectedDividend] = fmt.Sprintf(
			"expected dividend %s differs from the %s implied by the current dividend and solved growth",
			coregrowth.FormatCurrency(in.ExpectedDividend), coregrowth.FormatCurrency(res.CalculatedD1))
	}

	explanation := coregrowth.Explain(in, res)
	if !utils.ValidateMarkdown(explanation) {
		fmt.Printf("[GROWTH] Warning: generated explanation failed markdown validation\n")
	}

	resp := &ComputeResponse{
		Result:      res,
		Chart:       coregrowth.BuildChartRows(res),
		Explanation: explanation,
		Warnings:    warnings,
	}

	// History is best-effort: a missing database never blocks the calculator.
	if h.History != nil {
		saveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		id, err := h.History.SaveComputation(saveCtx, in, res)
		if err != nil {
			fmt.Printf("[GROWTH] Warning: failed to save history: %v\n", err)
		} else {
			resp.ID = id
		}
	}
	return resp
}

// HandleScenarios serves POST /api/growth/scenarios: a batch of named
// inputs, parsed leniently (JSON, repairable JSON, or Hjson).
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	var req ScenarioRequest
	if err := utils.SmartParse(string(body), &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Scenarios) == 0 {
		http.Error(w, "no scenarios provided", http.StatusBadRequest)
		return
	}

	results := make([]ScenarioResult, 0, len(req.Scenarios))
	for _, sc := range req.Scenarios {
		if errs := validate.CheckInputs(sc.Input, h.Limits); len(errs) > 0 {
			results = append(results, ScenarioResult{Name: sc.Name, Errors: errs})
			continue
		}
		results = append(results, ScenarioResult{
			Name:     sc.Name,
			Response: h.compute(r.Context(), sc.Input),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// HandleHistory serves GET /api/growth/history?limit=N.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	if h.History == nil {
		http.Error(w, "history storage not configured", http.StatusServiceUnavailable)
		return
	}

	entries, err := h.History.ListRecent(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to load history: %v", err), http.StatusServiceUnavailable)
		return
	}
	if entries == nil {
		entries = []*store.HistoryEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
