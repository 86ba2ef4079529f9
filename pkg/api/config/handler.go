package config

import (
	"encoding/json"
	"net/http"

	"implied_growth/pkg/core/growth"
	"implied_growth/pkg/core/validate"
)

// Response describes the active validation limits and the model
// constants the frontend needs to label the form and the chart.
type Response struct {
	Limits          validate.Limits `json:"limits"`
	ProjectionYears int             `json:"projection_years"`
	D1Tolerance     float64         `json:"d1_tolerance"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	Limits validate.Limits
}

// NewHandler creates a new config handler
func NewHandler(limits validate.Limits) *Handler {
	return &Handler{Limits: limits}
}

// HandleLimits serves GET /api/config/limits.
func (h *Handler) HandleLimits(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	resp := Response{
		Limits:          h.Limits,
		ProjectionYears: growth.ProjectionYears,
		D1Tolerance:     growth.D1Tolerance,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
