// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

// Package dashboard is the client side of the reporting API: a typed HTTP
// client plus the tabular transforms the terminal views are built from.
package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// requestTimeout bounds every API call; report queries that run longer
// than this are treated as failed.
const requestTimeout = 30 * time.Second

// Client talks to the reporting API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient returns a Client for the API rooted at baseURL
// (e.g. "http://localhost:8080/api").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// APIError is a non-2xx response decoded from the API's error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s", e.Status, e.Message)
}

// QuerySummary is one catalog entry as listed by the API.
type QuerySummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Params      []string `json:"params"`
}

// QueryResult is a catalog query execution result.
type QueryResult struct {
	QueryID     string           `json:"query_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Data        []map[string]any `json:"data"`
	RowCount    int              `json:"row_count"`
}

// CustomResult is an ad-hoc query execution result.
type CustomResult struct {
	Data     []map[string]any `json:"data"`
	RowCount int              `json:"row_count"`
}

// Summary is the dashboard summary: section name to metric values.
// Sections the server could not compute are simply absent.
type Summary map[string]map[string]any

// Healthy reports whether the API and its database are reachable.
func (c *Client) Healthy(ctx context.Context) bool {
	var status struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/health", nil, &status); err != nil {
		return false
	}
	return status.Status == "healthy"
}

// ListQueries fetches the query catalog.
func (c *Client) ListQueries(ctx context.Context) ([]QuerySummary, error) {
	var out []QuerySummary
	if err := c.get(ctx, "/queries", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RunQuery executes a catalog query with the given parameters.
func (c *Client) RunQuery(ctx context.Context, id string, params map[string]string) (*QueryResult, error) {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	var out QueryResult
	if err := c.get(ctx, "/query/"+url.PathEscape(id), values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RunCustom executes an ad-hoc SELECT.
func (c *Client) RunCustom(ctx context.Context, query string) (*CustomResult, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/custom-query", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out CustomResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchSummary fetches the dashboard summary.
func (c *Client) FetchSummary(ctx context.Context) (Summary, error) {
	var out Summary
	if err := c.get(ctx, "/dashboard/summary", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach reporting API at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding API response: %w", err)
	}
	return nil
}
