// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package dashboard

// Client-side derivations over API results. The server returns raw
// aggregates; the terminal views reshape them here instead of asking the
// API for every permutation.

// GroupSum groups rows by the value of keyCol and sums each of sumCols
// within a group. Group order follows first appearance; non-numeric cells
// count as zero.
func GroupSum(f *Frame, keyCol string, sumCols ...string) *Frame {
	type group struct {
		key  any
		sums map[string]float64
	}

	order := make([]*group, 0)
	index := make(map[string]*group)

	for _, rec := range f.Records {
		key := CellString(rec[keyCol])
		g, ok := index[key]
		if !ok {
			g = &group{key: rec[keyCol], sums: make(map[string]float64, len(sumCols))}
			index[key] = g
			order = append(order, g)
		}
		for _, col := range sumCols {
			if n, ok := Number(rec[col]); ok {
				g.sums[col] += n
			}
		}
	}

	records := make([]map[string]any, 0, len(order))
	for _, g := range order {
		rec := make(map[string]any, 1+len(sumCols))
		rec[keyCol] = g.key
		for _, col := range sumCols {
			rec[col] = g.sums[col]
		}
		records = append(records, rec)
	}

	columns := append([]string{keyCol}, sumCols...)
	return &Frame{Columns: columns, Records: records}
}

// CountBy counts rows per distinct value of keyCol, in first-appearance
// order. The count column is named "Count".
func CountBy(f *Frame, keyCol string) *Frame {
	order := make([]any, 0)
	counts := make(map[string]float64)
	seen := make(map[string]bool)

	for _, rec := range f.Records {
		key := CellString(rec[keyCol])
		if !seen[key] {
			seen[key] = true
			order = append(order, rec[keyCol])
		}
		counts[key]++
	}

	records := make([]map[string]any, 0, len(order))
	for _, key := range order {
		records = append(records, map[string]any{
			keyCol:  key,
			"Count": counts[CellString(key)],
		})
	}
	return &Frame{Columns: []string{keyCol, "Count"}, Records: records}
}

// WideToLong unpivots valueCols into (varName, valueName) pairs, one
// output row per input row per value column, keeping idCol as the row
// identifier. Rows where a value column is absent are skipped.
func WideToLong(f *Frame, idCol string, valueCols []string, varName, valueName string) *Frame {
	records := make([]map[string]any, 0, len(f.Records)*len(valueCols))
	for _, rec := range f.Records {
		for _, col := range valueCols {
			v, ok := rec[col]
			if !ok {
				continue
			}
			records = append(records, map[string]any{
				idCol:     rec[idCol],
				varName:   col,
				valueName: v,
			})
		}
	}
	return &Frame{Columns: []string{idCol, varName, valueName}, Records: records}
}

// MaxRow returns the row holding the maximum numeric value of col.
// Rows without a numeric value in col are ignored.
func MaxRow(f *Frame, col string) (map[string]any, bool) {
	var best map[string]any
	bestVal := 0.0

	for _, rec := range f.Records {
		n, ok := Number(rec[col])
		if !ok {
			continue
		}
		if best == nil || n > bestVal {
			best = rec
			bestVal = n
		}
	}
	return best, best != nil
}

// SumColumn totals the numeric values of col across all rows.
func SumColumn(f *Frame, col string) float64 {
	total := 0.0
	for _, rec := range f.Records {
		if n, ok := Number(rec[col]); ok {
			total += n
		}
	}
	return total
}
