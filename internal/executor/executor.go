// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

// Package executor runs SQL against the reporting store and materializes
// results as ordered row maps. Each Execute call opens its own connection
// and closes it before returning; no state is shared between calls.
package executor

import (
	"context"
	"strings"
	"unicode"

	"github.com/rgaleano/expediter/internal/database"
	"github.com/rgaleano/expediter/internal/logging"
)

// Row is a single result row keyed by column name.
type Row map[string]any

// Executor executes report SQL through a database.Connector.
type Executor struct {
	conn *database.Connector
}

// New returns an Executor backed by the given connector.
func New(conn *database.Connector) *Executor {
	return &Executor{conn: conn}
}

// Execute expands :name placeholders in template from bindings, runs the
// statement on a fresh connection, and returns all rows. Placeholder
// occurrences are bound in the order they appear in the template text; a
// name may appear more than once. Names missing from bindings are left
// untouched and will surface as a driver error.
//
// Failures are distinguished by type: *ConnectionError when the database
// is unreachable, *ExecutionError when the statement fails.
func (e *Executor) Execute(ctx context.Context, template string, bindings map[string]any) ([]Row, error) {
	stmt, args := expandPlaceholders(template, bindings, e.conn.Placeholder())

	db, err := e.conn.Open(ctx)
	if err != nil {
		return nil, &ConnectionError{Driver: e.conn.Driver(), Err: err}
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("closing report connection")
		}
	}()

	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, &ExecutionError{Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &ExecutionError{Err: err}
	}

	result := make([]Row, 0, 16)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &ExecutionError{Err: err}
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &ExecutionError{Err: err}
	}

	return result, nil
}

// normalizeValue converts driver-specific scan results into JSON-friendly
// values. Byte slices become strings; everything else passes through.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// expandPlaceholders rewrites :name markers into the driver's bind syntax
// and collects the argument list in template text order. Only names
// present in bindings are rewritten.
func expandPlaceholders(template string, bindings map[string]any, marker database.PlaceholderFunc) (string, []any) {
	if len(bindings) == 0 {
		return template, nil
	}

	var sb strings.Builder
	sb.Grow(len(template))
	args := make([]any, 0, len(bindings))

	for i := 0; i < len(template); {
		c := template[i]
		if c != ':' || i+1 >= len(template) || !isIdentStart(rune(template[i+1])) {
			sb.WriteByte(c)
			i++
			continue
		}

		j := i + 1
		for j < len(template) && isIdentPart(rune(template[j])) {
			j++
		}
		name := template[i+1 : j]

		val, ok := bindings[name]
		if !ok {
			sb.WriteString(template[i:j])
			i = j
			continue
		}

		args = append(args, val)
		sb.WriteString(marker(len(args)))
		i = j
	}

	return sb.String(), args
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
