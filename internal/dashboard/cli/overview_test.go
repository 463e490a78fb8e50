// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package cli

import (
	"testing"

	"github.com/rgaleano/expediter/internal/dashboard"
)

func TestOverviewChartsBothWeekdayMeasures(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		"Orders by Day of Week":  "TotalOrders",
		"Revenue by Day of Week": "TotalRevenue",
	}
	if len(weekdayCharts) != len(want) {
		t.Fatalf("weekdayCharts has %d entries, want %d", len(weekdayCharts), len(want))
	}
	for _, chart := range weekdayCharts {
		value, ok := want[chart.title]
		if !ok {
			t.Errorf("unexpected chart %q", chart.title)
			continue
		}
		if chart.value != value {
			t.Errorf("chart %q plots %q, want %q", chart.title, chart.value, value)
		}
	}
}

func TestOverviewChartColumnsResolvable(t *testing.T) {
	t.Parallel()

	rows := []map[string]any{
		{"DayOfWeek": "Monday", "TotalOrders": float64(12), "TotalRevenue": 340.5, "AvgOrderValue": 28.4},
		{"DayOfWeek": "Tuesday", "TotalOrders": float64(9), "TotalRevenue": 215.0, "AvgOrderValue": 23.9},
	}
	f := dashboard.NewFrame(rows, "DayOfWeek", "TotalOrders", "TotalRevenue", "AvgOrderValue")

	for _, chart := range weekdayCharts {
		for _, rec := range f.Records {
			if _, ok := dashboard.Number(rec[chart.value]); !ok {
				t.Errorf("chart %q: column %s not numeric in %v", chart.title, chart.value, rec)
			}
		}
	}
}
