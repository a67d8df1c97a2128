// Package analysis exposes the projection engine over HTTP. Handlers are
// thin plumbing: decode, normalize at the boundary, run the pure engine,
// encode. No numeric logic lives here.
package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"property_proforma/pkg/config"
	core "property_proforma/pkg/core/analysis"
	"property_proforma/pkg/core/exits"
	"property_proforma/pkg/core/report"
	"property_proforma/pkg/core/store"
)

// Handler carries the engine configuration and optional persistence.
type Handler struct {
	Engine *core.Engine
	Repo   *store.AnalysisRepo
}

// NewHandler builds a handler from engine config. Repo may be nil when
// running without a database.
func NewHandler(cfg config.Config, repo *store.AnalysisRepo) *Handler {
	return &Handler{
		Engine: core.NewEngine(cfg.Exits, cfg.Thresholds),
		Repo:   repo,
	}
}

// RunRequest is the analysis request body. AnalysisDate defaults to the
// request time when omitted; the engine itself never reads a clock.
type RunRequest struct {
	config.DealEntry
	AnalysisDate string `json:"analysis_date,omitempty"`
	Persist      bool   `json:"persist,omitempty"`
}

// HandleRun runs one full analysis: POST /api/analysis/run.
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deal, err := req.DealEntry.Normalize()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	analysisDate := time.Now().UTC()
	if req.AnalysisDate != "" {
		d, err := time.Parse("2006-01-02", req.AnalysisDate)
		if err != nil {
			http.Error(w, "bad analysis_date: "+err.Error(), http.StatusBadRequest)
			return
		}
		analysisDate = d
	}

	res, err := h.Engine.Run(deal.Property, deal.Financing, analysisDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if req.Persist && h.Repo != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()
		if err := h.Repo.Save(ctx, res); err != nil {
			// Persistence is at-least-once and retryable; the caller
			// still gets the computed result.
			log.WithError(err).Warn("failed to persist analysis run")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// HandleScenarios ranks exit scenarios for one deal without returning the
// full period table: POST /api/analysis/scenarios.
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	deal, err := req.DealEntry.Normalize()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.Engine.Run(deal.Property, deal.Financing, time.Now().UTC())
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := struct {
		Scenarios     []exits.Scenario `json:"scenarios"`
		RankedByIRR   []exits.Scenario `json:"ranked_by_irr"`
		RankedByTotal []exits.Scenario `json:"ranked_by_total_return"`
	}{
		Scenarios:     res.Scenarios,
		RankedByIRR:   exits.RankByIRR(res.Scenarios),
		RankedByTotal: exits.RankByTotalReturn(res.Scenarios),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleReport renders the analysis as HTML: POST /api/analysis/report.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	cors(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	deal, err := req.DealEntry.Normalize()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.Engine.Run(deal.Property, deal.Financing, time.Now().UTC())
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	html, err := report.HTML(res)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func cors(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
