package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"sales-analytics/internal/analytics"
	"sales-analytics/internal/rowsource"
)

// ReportHandler serves the report sections. Every request runs the
// pipeline over a fresh snapshot; nothing is cached between calls.
type ReportHandler struct {
	src  rowsource.Source
	opts analytics.Options
}

func New(src rowsource.Source, opts analytics.Options) *ReportHandler {
	return &ReportHandler{src: src, opts: opts}
}

// run executes the pipeline with the request's reference date applied.
func (h *ReportHandler) run(w http.ResponseWriter, r *http.Request) (*analytics.Result, bool) {
	opts := h.opts
	if now := r.URL.Query().Get("now"); now != "" {
		t, err := time.Parse("2006-01-02", now)
		if err != nil {
			http.Error(w, "Invalid 'now' date, expected YYYY-MM-DD", http.StatusBadRequest)
			return nil, false
		}
		opts.Now = t
	}

	result, err := analytics.Run(r.Context(), h.src, opts)
	if err != nil {
		http.Error(w, "Failed to compute report", http.StatusInternalServerError)
		return nil, false
	}
	return result, true
}

// GetOverview returns the headline measures
// @Summary Sales overview
// @Description Headline measures over the full sales snapshot
// @Tags report
// @Produce json
// @Param now query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} analytics.Overview
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /report/overview [get]
func (h *ReportHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	if result, ok := h.run(w, r); ok {
		writeJSON(w, result.Overview)
	}
}

// GetTrends returns the monthly sales trend
// @Summary Monthly sales trend
// @Description Per-month sales with running totals and period-over-period classification
// @Tags report
// @Produce json
// @Param now query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {array} analytics.TrendPoint
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /report/trends [get]
func (h *ReportHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	if result, ok := h.run(w, r); ok {
		writeJSON(w, result.MonthlyTrend)
	}
}

// GetCategories returns category share of total sales
// @Summary Category share
// @Description Part-to-whole sales share per product category
// @Tags report
// @Produce json
// @Param now query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {array} analytics.CategoryShare
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /report/categories [get]
func (h *ReportHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	if result, ok := h.run(w, r); ok {
		writeJSON(w, result.CategoryShare)
	}
}

// GetPerformance returns yearly product performance
// @Summary Product performance
// @Description Product-year sales versus the product's own average and the prior year
// @Tags report
// @Produce json
// @Param now query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {array} analytics.ProductPerformance
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /report/performance [get]
func (h *ReportHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	if result, ok := h.run(w, r); ok {
		writeJSON(w, result.Performance)
	}
}

// GetCustomers returns the consolidated customer report
// @Summary Customer report
// @Description One row per purchasing customer with segment and KPIs, ordered by total sales
// @Tags report
// @Produce json
// @Param now query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {array} analytics.CustomerReport
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /report/customers [get]
func (h *ReportHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	if result, ok := h.run(w, r); ok {
		writeJSON(w, result.Customers)
	}
}

// GetProducts returns the consolidated product report
// @Summary Product report
// @Description One row per sold product with cost/revenue segments and KPIs
// @Tags report
// @Produce json
// @Param now query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {array} analytics.ProductReport
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /report/products [get]
func (h *ReportHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	if result, ok := h.run(w, r); ok {
		writeJSON(w, result.Products)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
