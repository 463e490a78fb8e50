// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package dashboard

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Frame is a small columnar view over API result rows. Records keep the
// server's row order; Columns fixes a display order for maps whose key
// order is otherwise undefined.
type Frame struct {
	Columns []string
	Records []map[string]any
}

// NewFrame builds a Frame from rows. Columns listed in preferred come
// first (when present in the data); any remaining columns follow in
// alphabetical order.
func NewFrame(records []map[string]any, preferred ...string) *Frame {
	present := map[string]bool{}
	for _, rec := range records {
		for col := range rec {
			present[col] = true
		}
	}

	columns := make([]string, 0, len(present))
	for _, col := range preferred {
		if present[col] {
			columns = append(columns, col)
			delete(present, col)
		}
	}
	rest := make([]string, 0, len(present))
	for col := range present {
		rest = append(rest, col)
	}
	sort.Strings(rest)
	columns = append(columns, rest...)

	return &Frame{Columns: columns, Records: records}
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Records)
}

// Head returns a Frame with at most n rows.
func (f *Frame) Head(n int) *Frame {
	if n >= len(f.Records) {
		return f
	}
	return &Frame{Columns: f.Columns, Records: f.Records[:n]}
}

// Number extracts v as a float64. JSON numbers arrive as float64; values
// from other sources may be integer types or numeric strings.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

// CellString renders a cell for display. Floats drop trailing zeros;
// nil renders empty.
func CellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case bool:
		return strconv.FormatBool(c)
	case time.Time:
		return c.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", c)
	}
}
