// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package dashboard

import (
	"math"

	"github.com/pterm/pterm"
)

// RenderTable prints at most limit rows of the frame as a pterm table.
// A limit of 0 prints everything.
func RenderTable(f *Frame, limit int) {
	view := f
	if limit > 0 {
		view = f.Head(limit)
	}

	data := make(pterm.TableData, 0, view.Len()+1)
	data = append(data, view.Columns)
	for _, rec := range view.Records {
		row := make([]string, len(view.Columns))
		for i, col := range view.Columns {
			row[i] = CellString(rec[col])
		}
		data = append(data, row)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println("rendering table:", err)
	}
	if limit > 0 && f.Len() > limit {
		pterm.Printf("... %d more rows\n", f.Len()-limit)
	}
}

// RenderBarChart prints a horizontal bar chart of valueCol keyed by
// labelCol, at most maxBars bars. Values are rounded to integers, which
// is all pterm bars can carry.
func RenderBarChart(title string, f *Frame, labelCol, valueCol string, maxBars int) {
	view := f
	if maxBars > 0 {
		view = f.Head(maxBars)
	}

	bars := make([]pterm.Bar, 0, view.Len())
	for _, rec := range view.Records {
		n, ok := Number(rec[valueCol])
		if !ok {
			continue
		}
		bars = append(bars, pterm.Bar{
			Label: CellString(rec[labelCol]),
			Value: int(math.Round(n)),
		})
	}
	if len(bars) == 0 {
		pterm.Info.Println("no data for " + title)
		return
	}

	pterm.DefaultSection.Println(title)
	err := pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Render()
	if err != nil {
		pterm.Error.Println("rendering chart:", err)
	}
}

// RenderMetric prints one headline number with its label.
func RenderMetric(label, value string) {
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint(label+": ") +
		pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(value))
}

// RenderSectionError reports a failed view section without aborting the
// rest of the dashboard.
func RenderSectionError(section string, err error) {
	pterm.Error.Printf("%s unavailable: %v\n", section, err)
}
