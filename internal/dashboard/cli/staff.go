// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rgaleano/expediter/internal/dashboard"
)

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Order handling and sales per staff member",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := viewContext()
		defer cancel()
		client := newClient(ctx)

		pterm.DefaultSection.Println("Staff Performance")

		perf, err := client.RunQuery(ctx, "staff_performance", nil)
		if err != nil {
			dashboard.RenderSectionError("staff performance", err)
			return nil
		}

		f := dashboard.NewFrame(perf.Data,
			"StaffName", "RoleName", "OrdersHandled", "TotalSales", "AvgOrderValue",
			"DaysWorked", "AvgOrdersPerDay")
		dashboard.RenderBarChart("Total Sales by Staff Member", f, "StaffName", "TotalSales", 10)
		dashboard.RenderBarChart("Orders Handled", f, "StaffName", "OrdersHandled", 10)
		dashboard.RenderTable(f, 0)
		return nil
	},
}

//nolint:gochecknoinits // cobra wiring
func init() {
	rootCmd.AddCommand(staffCmd)
}
