// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

// Package api implements the reporting HTTP API: health, the query
// catalog, parameterized query execution, a restricted ad-hoc SELECT
// endpoint, and a dashboard summary.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/rgaleano/expediter/internal/catalog"
	"github.com/rgaleano/expediter/internal/database"
	"github.com/rgaleano/expediter/internal/executor"
	"github.com/rgaleano/expediter/internal/logging"
	"github.com/rgaleano/expediter/internal/metrics"
)

// Handler serves the reporting API endpoints.
type Handler struct {
	exec     *executor.Executor
	conn     *database.Connector
	validate *validator.Validate
}

// NewHandler builds a Handler over the given executor and connector.
func NewHandler(exec *executor.Executor, conn *database.Connector) *Handler {
	return &Handler{
		exec:     exec,
		conn:     conn,
		validate: validator.New(),
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health reports API liveness and database reachability. The database
// check opens and closes a real connection, same as a report would.
//
// @Summary API and database health
// @Description Returns API liveness and whether the reporting database accepts connections
// @Tags Core
// @Produce json
// @Success 200 {object} healthResponse "Database reachable"
// @Failure 500 {object} healthResponse "Database unreachable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.conn.Ping(r.Context()); err != nil {
		logging.Warn().Err(err).Msg("health check: database unreachable")
		respondJSON(w, http.StatusInternalServerError, healthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
		})
		return
	}
	respondJSON(w, http.StatusOK, healthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

type queryInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Params      []string `json:"params"`
}

// ListQueries returns the catalog as id, name, description, and declared
// parameter names. SQL text is never exposed.
//
// @Summary List available reports
// @Description Returns every catalog report with its id, name, description, and declared parameters
// @Tags Reports
// @Produce json
// @Success 200 {array} queryInfo "Catalog listing"
// @Router /queries [get]
func (h *Handler) ListQueries(w http.ResponseWriter, _ *http.Request) {
	defs := catalog.List()
	infos := make([]queryInfo, 0, len(defs))
	for _, def := range defs {
		params := def.Params
		if params == nil {
			params = []string{}
		}
		infos = append(infos, queryInfo{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Params:      params,
		})
	}
	respondJSON(w, http.StatusOK, infos)
}

type queryResultResponse struct {
	QueryID     string         `json:"query_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Data        []executor.Row `json:"data"`
	RowCount    int            `json:"row_count"`
}

// RunQuery executes a catalog query by id. Every declared parameter must
// be supplied as a query-string value and nothing beyond the declared set
// is accepted.
//
// @Summary Run a catalog report
// @Description Executes the report identified by id with the supplied parameters
// @Tags Reports
// @Produce json
// @Param id path string true "Report id" example(monthly_trends)
// @Param date query string false "Date parameter (YYYY-MM-DD), where declared"
// @Param year query string false "Year parameter (YYYY), where declared"
// @Success 200 {object} queryResultResponse "Report rows"
// @Failure 400 {object} errorResponse "Missing or undeclared parameter"
// @Failure 404 {object} errorResponse "Unknown report id"
// @Failure 500 {object} errorResponse "Execution failure"
// @Router /query/{id} [get]
func (h *Handler) RunQuery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	def, ok := catalog.Lookup(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Query not found")
		return
	}

	query := r.URL.Query()

	bindings := make(map[string]any, len(def.Params))
	declared := make(map[string]bool, len(def.Params))
	for _, param := range def.Params {
		declared[param] = true
		value := query.Get(param)
		if value == "" {
			respondError(w, http.StatusBadRequest, "Missing required parameter: "+param)
			return
		}
		bindings[param] = value
	}
	for param := range query {
		if !declared[param] {
			respondError(w, http.StatusBadRequest, "Unknown parameter: "+param)
			return
		}
	}

	rows, err := h.runTimed(r, def.ID, def.Template, bindings)
	if err != nil {
		h.respondQueryError(w, def.ID, err)
		return
	}

	respondJSON(w, http.StatusOK, queryResultResponse{
		QueryID:     def.ID,
		Name:        def.Name,
		Description: def.Description,
		Data:        rows,
		RowCount:    len(rows),
	})
}

type customQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

type customQueryResponse struct {
	Data     []executor.Row `json:"data"`
	RowCount int            `json:"row_count"`
}

// CustomQuery executes a caller-supplied SELECT after the lexical
// read-only check. The statement runs verbatim; there are no placeholders
// on this path.
//
// @Summary Run an ad-hoc SELECT
// @Description Executes a caller-supplied SELECT statement after a lexical read-only check
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body customQueryRequest true "Statement to execute"
// @Success 200 {object} customQueryResponse "Result rows"
// @Failure 400 {object} errorResponse "Missing query field"
// @Failure 403 {object} errorResponse "Statement rejected by the read-only check"
// @Failure 500 {object} errorResponse "Execution failure"
// @Router /custom-query [post]
func (h *Handler) CustomQuery(w http.ResponseWriter, r *http.Request) {
	var req customQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Query is required")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Query is required")
		return
	}

	if msg := checkReadOnly(req.Query); msg != "" {
		logging.Warn().Str("remote", r.RemoteAddr).Msg("rejected ad-hoc query: " + msg)
		respondError(w, http.StatusForbidden, msg)
		return
	}

	rows, err := h.runTimed(r, "custom", req.Query, nil)
	if err != nil {
		h.respondQueryError(w, "custom", err)
		return
	}

	respondJSON(w, http.StatusOK, customQueryResponse{
		Data:     rows,
		RowCount: len(rows),
	})
}

// summarySections defines the dashboard summary panels. Each section is
// independent: a failing panel is omitted from the response rather than
// failing the whole request.
var summarySections = []struct {
	key string
	sql string
}{
	{
		key: "revenue",
		sql: `SELECT SUM(TotalAmount) AS TotalRevenue, COUNT(*) AS TotalOrders
			FROM ORDERS WHERE PaymentStatus = 'Paid'`,
	},
	{
		key: "customers",
		sql: `SELECT COUNT(*) AS TotalCustomers FROM CUSTOMERS`,
	},
	{
		key: "menu_items",
		sql: `SELECT COUNT(*) AS TotalMenuItems FROM MENUITEMS WHERE Available = 1`,
	},
	{
		key: "staff",
		sql: `SELECT COUNT(*) AS TotalStaff FROM STAFF`,
	},
}

// DashboardSummary aggregates the headline metrics. Sections that fail
// are logged and dropped; the response is 200 as long as the handler
// itself runs, even if every section is missing.
//
// @Summary Dashboard headline metrics
// @Description Returns revenue, customer, menu item, and staff totals; failing sections are omitted
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]map[string]any "Summary sections"
// @Router /dashboard/summary [get]
func (h *Handler) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary := make(map[string]executor.Row, len(summarySections))

	for _, section := range summarySections {
		rows, err := h.exec.Execute(r.Context(), section.sql, nil)
		if err != nil {
			logging.Warn().Err(err).Str("section", section.key).Msg("summary section failed")
			continue
		}
		if len(rows) == 0 {
			continue
		}
		summary[section.key] = rows[0]
	}

	respondJSON(w, http.StatusOK, summary)
}

// runTimed executes a statement and records query metrics.
func (h *Handler) runTimed(r *http.Request, queryID, stmt string, bindings map[string]any) ([]executor.Row, error) {
	start := time.Now()
	rows, err := h.exec.Execute(r.Context(), stmt, bindings)
	metrics.RecordQuery(queryID, time.Since(start), len(rows), errorType(err))
	return rows, err
}

func errorType(err error) string {
	var connErr *executor.ConnectionError
	var execErr *executor.ExecutionError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &connErr):
		return "connection"
	case errors.As(err, &execErr):
		return "execution"
	default:
		return "unknown"
	}
}

// respondQueryError maps executor failures onto the API error contract.
// Both failure classes are server-side 500s; the distinction matters for
// logs and metrics, not for the status code.
func (h *Handler) respondQueryError(w http.ResponseWriter, queryID string, err error) {
	logging.Error().Err(err).Str("query_id", queryID).Msg("report query failed")
	respondError(w, http.StatusInternalServerError, err.Error())
}
