// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package api

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/rgaleano/expediter/internal/config"
	"github.com/rgaleano/expediter/internal/database"
	"github.com/rgaleano/expediter/internal/executor"
)

type testAPI struct {
	router http.Handler
	db     *sql.DB
}

// newTestAPI builds a router over a freshly seeded database. The returned
// db handle stays open so tests can mutate the store mid-flight.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "api_test.db")
	conn, err := database.NewConnector(&config.DatabaseConfig{Driver: "sqlite", DSN: dsn})
	if err != nil {
		t.Fatalf("NewConnector: %v", err)
	}

	db, err := conn.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.SeedDemoData(context.Background(), db); err != nil {
		t.Fatalf("SeedDemoData: %v", err)
	}

	h := NewHandler(executor.New(conn), conn)
	cfg := &config.APIConfig{
		CORSOrigins:       []string{"*"},
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: true,
	}
	return &testAPI{router: NewRouter(h, cfg), db: db}
}

func (a *testAPI) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}

type queryResult struct {
	QueryID     string           `json:"query_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Data        []map[string]any `json:"data"`
	RowCount    int              `json:"row_count"`
}

type apiError struct {
	Error string `json:"error"`
}

func TestHealthHealthy(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	decodeJSON(t, rec, &body)
	if body.Status != "healthy" || body.Database != "connected" {
		t.Errorf("body = %+v, want healthy/connected", body)
	}
}

func TestHealthUnhealthy(t *testing.T) {
	t.Parallel()

	conn, err := database.NewConnector(&config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "/nonexistent-dir/expediter.db",
	})
	if err != nil {
		t.Fatalf("NewConnector: %v", err)
	}
	h := NewHandler(executor.New(conn), conn)
	router := NewRouter(h, &config.APIConfig{
		CORSOrigins:       []string{"*"},
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: true,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	decodeJSON(t, rec, &body)
	if body.Status != "unhealthy" || body.Database != "disconnected" {
		t.Errorf("body = %+v, want unhealthy/disconnected", body)
	}
}

func TestListQueries(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/queries")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var infos []struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Params      []string `json:"params"`
	}
	decodeJSON(t, rec, &infos)

	if len(infos) != 10 {
		t.Fatalf("got %d queries, want 10", len(infos))
	}
	for _, info := range infos {
		if info.ID == "" || info.Name == "" || info.Description == "" {
			t.Errorf("query %+v has empty fields", info)
		}
	}

	// Empty params must serialize as [], not null.
	if !strings.Contains(rec.Body.String(), `"params":[]`) {
		t.Error("expected at least one query with empty params array")
	}
	if strings.Contains(rec.Body.String(), `"params":null`) {
		t.Error("params serialized as null")
	}
	// SQL text must never leak through the listing.
	if strings.Contains(strings.ToUpper(rec.Body.String()), "SELECT") {
		t.Error("listing leaked SQL text")
	}
}

func TestRunQueryUnknownID(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/no_such_report")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body apiError
	decodeJSON(t, rec, &body)
	if body.Error != "Query not found" {
		t.Errorf("error = %q, want %q", body.Error, "Query not found")
	}
}

func TestRunQueryMissingParam(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/top_menu_items_daily")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body apiError
	decodeJSON(t, rec, &body)
	if body.Error != "Missing required parameter: date" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestRunQueryUnknownParamRejected(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/weekday_analysis?foo=1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body apiError
	decodeJSON(t, rec, &body)
	if body.Error != "Unknown parameter: foo" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestRunQueryTopItemsDaily(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/top_menu_items_daily?date=2025-03-01")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result queryResult
	decodeJSON(t, rec, &result)

	if result.QueryID != "top_menu_items_daily" {
		t.Errorf("query_id = %q", result.QueryID)
	}
	if result.RowCount != 2 || len(result.Data) != 2 {
		t.Fatalf("row_count = %d, data len = %d, want 2", result.RowCount, len(result.Data))
	}
	// Ribeye Steak (32.00) outranks Margherita Pizza (2 x 14.00 = 28.00).
	if result.Data[0]["MenuItem"] != "Ribeye Steak" {
		t.Errorf("top item = %v, want Ribeye Steak", result.Data[0]["MenuItem"])
	}
	if rev, _ := result.Data[0]["Revenue"].(float64); rev != 32.0 {
		t.Errorf("top revenue = %v, want 32", result.Data[0]["Revenue"])
	}
}

func TestRunQueryLoyaltyTierBoundaries(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/customer_loyalty")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result queryResult
	decodeJSON(t, rec, &result)

	// Eight seeded customers straddle the tier boundaries; the two under
	// the five-order floor and the incidental customers must not appear.
	if result.RowCount != 7 {
		t.Fatalf("row_count = %d, want 7", result.RowCount)
	}

	tiers := make(map[string]string)
	orders := make(map[string]float64)
	for _, row := range result.Data {
		name, _ := row["CustomerName"].(string)
		tier, _ := row["LoyaltyTier"].(string)
		count, _ := row["TotalOrders"].(float64)
		tiers[name] = tier
		orders[name] = count
	}

	want := map[string]struct {
		tier   string
		orders float64
	}{
		"Dana Whitfield":  {"VIP", 50},
		"Elio Marchetti":  {"Gold", 49}, // 49 paid + 1 pending: pending must not count
		"Femi Adeyemi":    {"Gold", 20},
		"Greta Lindqvist": {"Silver", 19},
		"Hugo Fernandez":  {"Silver", 10},
		"Imani Okafor":    {"Bronze", 9},
		"Jonas Keller":    {"Bronze", 5}, // exactly at the reporting floor
	}
	for name, w := range want {
		if tiers[name] != w.tier {
			t.Errorf("%s tier = %q, want %q", name, tiers[name], w.tier)
		}
		if orders[name] != w.orders {
			t.Errorf("%s orders = %v, want %v", name, orders[name], w.orders)
		}
	}
	if _, present := tiers["Karin Sato"]; present {
		t.Error("customer with 4 orders appeared despite the 5-order floor")
	}
}

func TestRunQueryHourlyDistribution(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/hourly_orders?date=2025-03-01")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result queryResult
	decodeJSON(t, rec, &result)

	if result.RowCount != 2 {
		t.Fatalf("row_count = %d, want 2 (hours 11 and 12)", result.RowCount)
	}
	first, second := result.Data[0], result.Data[1]
	if h, _ := first["Hour"].(float64); h != 11 {
		t.Errorf("first hour = %v, want 11", first["Hour"])
	}
	if c, _ := first["OrderCount"].(float64); c != 1 {
		t.Errorf("11h order count = %v, want 1", first["OrderCount"])
	}
	if h, _ := second["Hour"].(float64); h != 12 {
		t.Errorf("second hour = %v, want 12", second["Hour"])
	}
	if c, _ := second["OrderCount"].(float64); c != 2 {
		t.Errorf("12h order count = %v, want 2", second["OrderCount"])
	}
	if rev, _ := second["Revenue"].(float64); rev != 65.0 {
		t.Errorf("12h revenue = %v, want 65", second["Revenue"])
	}
}

func TestRunQueryHourlyEmptyDay(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/hourly_orders?date=2025-12-25")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for empty day", rec.Code)
	}

	var result queryResult
	decodeJSON(t, rec, &result)
	if result.RowCount != 0 {
		t.Errorf("row_count = %d, want 0", result.RowCount)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("empty data should serialize as [], got %s", rec.Body.String())
	}
}

func TestRunQueryMonthlyTrendsExcludesUnpaid(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/monthly_trends?year=2024")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result queryResult
	decodeJSON(t, rec, &result)

	months := make([]float64, 0, len(result.Data))
	for _, row := range result.Data {
		m, _ := row["Month"].(float64)
		months = append(months, m)
	}

	// Paid orders exist in Jan, Feb, Jun, Jul 2024. March holds only the
	// pending and cancelled orders and must not appear.
	want := []float64{1, 2, 6, 7}
	if len(months) != len(want) {
		t.Fatalf("months = %v, want %v", months, want)
	}
	for i := range want {
		if months[i] != want[i] {
			t.Errorf("months[%d] = %v, want %v", i, months[i], want[i])
		}
	}
	if result.Data[0]["MonthName"] != "January" {
		t.Errorf("MonthName = %v, want January", result.Data[0]["MonthName"])
	}
}

func TestRunQueryProfitDefaultsForUnsoldItem(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/profit_analysis")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result queryResult
	decodeJSON(t, rec, &result)

	var lemonade map[string]any
	for _, row := range result.Data {
		if row["MenuItem"] == "House Lemonade" {
			lemonade = row
			break
		}
	}
	if lemonade == nil {
		t.Fatal("House Lemonade missing from profit analysis")
	}

	for _, field := range []string{"TimesSold", "TotalQuantitySold", "TotalRevenue", "TotalProfit"} {
		if v, _ := lemonade[field].(float64); v != 0 {
			t.Errorf("%s = %v, want 0 for never-sold item", field, lemonade[field])
		}
	}
	// 0.25 kg of lemons at an average 1.00/kg.
	if cost, _ := lemonade["EstimatedCost"].(float64); cost != 0.25 {
		t.Errorf("EstimatedCost = %v, want 0.25", lemonade["EstimatedCost"])
	}
}

func TestRunQueryWeekdayOrdering(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/weekday_analysis")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result queryResult
	decodeJSON(t, rec, &result)

	if result.RowCount == 0 || result.RowCount > 7 {
		t.Fatalf("row_count = %d, want 1..7", result.RowCount)
	}
	prev := -1.0
	for _, row := range result.Data {
		n, _ := row["DayNumber"].(float64)
		if n <= prev {
			t.Fatalf("DayNumber %v not strictly ascending after %v", n, prev)
		}
		prev = n
	}
}

func TestRunQueryTableUtilizationIncludesIdleTable(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/table_utilization")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result queryResult
	decodeJSON(t, rec, &result)
	if result.RowCount != 3 {
		t.Fatalf("row_count = %d, want 3 tables", result.RowCount)
	}

	var idle map[string]any
	for _, row := range result.Data {
		if n, _ := row["TableNumber"].(float64); n == 3 {
			idle = row
			break
		}
	}
	if idle == nil {
		t.Fatal("table 3 missing from utilization report")
	}
	if c, _ := idle["TotalReservations"].(float64); c != 0 {
		t.Errorf("idle table reservations = %v, want 0", idle["TotalReservations"])
	}
	if idle["AvgGuestsPerReservation"] != nil {
		t.Errorf("idle table avg guests = %v, want null", idle["AvgGuestsPerReservation"])
	}
}

func TestRunQueryRetention(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/query/customer_retention")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result queryResult
	decodeJSON(t, rec, &result)

	find := func(year, month float64) map[string]any {
		for _, row := range result.Data {
			y, _ := row["Year"].(float64)
			m, _ := row["Month"].(float64)
			if y == year && m == month {
				return row
			}
		}
		return nil
	}

	// January 2024: all eight tier customers ordered; only the two largest
	// reached February.
	jan := find(2024, 1)
	if jan == nil {
		t.Fatal("2024-01 missing from retention report")
	}
	if v, _ := jan["TotalCustomers"].(float64); v != 8 {
		t.Errorf("2024-01 total customers = %v, want 8", jan["TotalCustomers"])
	}
	if v, _ := jan["ReturnedCustomers"].(float64); v != 2 {
		t.Errorf("2024-01 returned = %v, want 2", jan["ReturnedCustomers"])
	}
	if v, _ := jan["RetentionRate"].(float64); v != 25.0 {
		t.Errorf("2024-01 retention rate = %v, want 25", jan["RetentionRate"])
	}

	// June 2024: the single delivery customer came back in July.
	jun := find(2024, 6)
	if jun == nil {
		t.Fatal("2024-06 missing from retention report")
	}
	if v, _ := jun["RetentionRate"].(float64); v != 100.0 {
		t.Errorf("2024-06 retention rate = %v, want 100", jun["RetentionRate"])
	}
}

func TestCustomQuerySuccess(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.post(t, "/api/custom-query",
		`{"query": "select Name from MENUITEMS order by MenuItemID limit 2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result struct {
		Data     []map[string]any `json:"data"`
		RowCount int              `json:"row_count"`
	}
	decodeJSON(t, rec, &result)
	if result.RowCount != 2 {
		t.Fatalf("row_count = %d, want 2", result.RowCount)
	}
	if result.Data[0]["Name"] != "Bruschetta" {
		t.Errorf("first row = %v, want Bruschetta", result.Data[0]["Name"])
	}
	// The shape must not carry catalog fields.
	if strings.Contains(rec.Body.String(), "query_id") {
		t.Error("custom query response leaked query_id field")
	}
}

func TestCustomQueryRejectsNonSelect(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.post(t, "/api/custom-query", `{"query": "UPDATE ORDERS SET TotalAmount = 0"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	var body apiError
	decodeJSON(t, rec, &body)
	if body.Error != "Only SELECT queries are allowed" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestCustomQueryRejectsStackedStatement(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.post(t, "/api/custom-query",
		`{"query": "SELECT * FROM ORDERS; DROP TABLE ORDERS"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	var body apiError
	decodeJSON(t, rec, &body)
	if body.Error != "Query contains forbidden keyword: DROP" {
		t.Errorf("error = %q", body.Error)
	}

	// The guard must have fired before execution: the table is intact.
	recAfter := api.get(t, "/api/query/weekday_analysis")
	if recAfter.Code != http.StatusOK {
		t.Errorf("ORDERS table damaged after rejected query: status %d", recAfter.Code)
	}
}

func TestCustomQueryMissingBody(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	for _, body := range []string{"", "{}", `{"query": ""}`, "not json"} {
		rec := api.post(t, "/api/custom-query", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
			continue
		}
		var e apiError
		decodeJSON(t, rec, &e)
		if e.Error != "Query is required" {
			t.Errorf("body %q: error = %q", body, e.Error)
		}
	}
}

func TestCustomQueryExecutionError(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.post(t, "/api/custom-query", `{"query": "SELECT * FROM NO_SUCH_TABLE"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body apiError
	decodeJSON(t, rec, &body)
	if body.Error == "" {
		t.Error("execution error produced empty error message")
	}
}

func TestDashboardSummaryComplete(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.get(t, "/api/dashboard/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var summary map[string]map[string]any
	decodeJSON(t, rec, &summary)

	for _, key := range []string{"revenue", "customers", "menu_items", "staff"} {
		if _, ok := summary[key]; !ok {
			t.Errorf("summary missing section %q", key)
		}
	}
	if v, _ := summary["customers"]["TotalCustomers"].(float64); v != 10 {
		t.Errorf("TotalCustomers = %v, want 10", summary["customers"]["TotalCustomers"])
	}
	if v, _ := summary["menu_items"]["TotalMenuItems"].(float64); v != 6 {
		t.Errorf("TotalMenuItems = %v, want 6 available items", summary["menu_items"]["TotalMenuItems"])
	}
	if v, _ := summary["staff"]["TotalStaff"].(float64); v != 3 {
		t.Errorf("TotalStaff = %v, want 3", summary["staff"]["TotalStaff"])
	}
	// 166 tier orders + 3 hourly + 2 returner orders are paid.
	if v, _ := summary["revenue"]["TotalOrders"].(float64); v != 171 {
		t.Errorf("TotalOrders = %v, want 171", summary["revenue"]["TotalOrders"])
	}
}

func TestDashboardSummaryPartialFailure(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	if _, err := api.db.Exec("DROP TABLE STAFF"); err != nil {
		t.Fatalf("dropping STAFF: %v", err)
	}

	rec := api.get(t, "/api/dashboard/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite failed section", rec.Code)
	}

	var summary map[string]map[string]any
	decodeJSON(t, rec, &summary)

	if _, ok := summary["staff"]; ok {
		t.Error("staff section present after its table was dropped")
	}
	for _, key := range []string{"revenue", "customers", "menu_items"} {
		if _, ok := summary[key]; !ok {
			t.Errorf("healthy section %q missing", key)
		}
	}
}

func TestRateLimiting(t *testing.T) {
	t.Parallel()

	dsn := filepath.Join(t.TempDir(), "ratelimit_test.db")
	conn, err := database.NewConnector(&config.DatabaseConfig{Driver: "sqlite", DSN: dsn})
	if err != nil {
		t.Fatalf("NewConnector: %v", err)
	}
	db, err := conn.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	if err := database.SeedDemoData(context.Background(), db); err != nil {
		t.Fatalf("SeedDemoData: %v", err)
	}

	h := NewHandler(executor.New(conn), conn)
	router := NewRouter(h, &config.APIConfig{
		CORSOrigins:       []string{"*"},
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/queries", nil)
		req.RemoteAddr = "10.1.2.3:5555"
		router.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("first two requests = %v, want 200s", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", statuses[2])
	}
}
