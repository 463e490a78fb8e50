// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package dashboard

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the frame as CSV: a header row of column names, then
// one row per record in frame order. Cells render via CellString, so
// NULLs come out empty and floats drop trailing zeros.
func WriteCSV(f *Frame, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(f.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	row := make([]string, len(f.Columns))
	for _, rec := range f.Records {
		for i, col := range f.Columns {
			row[i] = CellString(rec[col])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
