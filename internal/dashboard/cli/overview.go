// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rgaleano/expediter/internal/dashboard"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Headline metrics and weekday order patterns",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := viewContext()
		defer cancel()
		client := newClient(ctx)

		pterm.DefaultSection.Println("Restaurant Overview")

		summary, err := client.FetchSummary(ctx)
		if err != nil {
			dashboard.RenderSectionError("summary", err)
		} else {
			renderSummary(summary)
		}

		weekdays, err := client.RunQuery(ctx, "weekday_analysis", nil)
		if err != nil {
			dashboard.RenderSectionError("weekday analysis", err)
			return nil
		}
		f := dashboard.NewFrame(weekdays.Data, "DayOfWeek", "TotalOrders", "TotalRevenue", "AvgOrderValue")
		for _, chart := range weekdayCharts {
			dashboard.RenderBarChart(chart.title, f, "DayOfWeek", chart.value, 7)
		}
		dashboard.RenderTable(f, 0)
		return nil
	},
}

// weekdayCharts are the bar charts the overview draws from the weekday
// frame, one per measure.
var weekdayCharts = []struct {
	title string
	value string
}{
	{"Orders by Day of Week", "TotalOrders"},
	{"Revenue by Day of Week", "TotalRevenue"},
}

func renderSummary(summary dashboard.Summary) {
	if section, ok := summary["revenue"]; ok {
		if v, ok := dashboard.Number(section["TotalRevenue"]); ok {
			dashboard.RenderMetric("Total Revenue", fmt.Sprintf("%.2f", v))
		}
		if v, ok := dashboard.Number(section["TotalOrders"]); ok {
			dashboard.RenderMetric("Paid Orders", fmt.Sprintf("%.0f", v))
		}
	}
	if section, ok := summary["customers"]; ok {
		if v, ok := dashboard.Number(section["TotalCustomers"]); ok {
			dashboard.RenderMetric("Customers", fmt.Sprintf("%.0f", v))
		}
	}
	if section, ok := summary["menu_items"]; ok {
		if v, ok := dashboard.Number(section["TotalMenuItems"]); ok {
			dashboard.RenderMetric("Menu Items", fmt.Sprintf("%.0f", v))
		}
	}
	if section, ok := summary["staff"]; ok {
		if v, ok := dashboard.Number(section["TotalStaff"]); ok {
			dashboard.RenderMetric("Staff", fmt.Sprintf("%.0f", v))
		}
	}
}

//nolint:gochecknoinits // cobra wiring
func init() {
	rootCmd.AddCommand(overviewCmd)
}
