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

var menuDate string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Menu item performance, profitability, and daily top sellers",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := viewContext()
		defer cancel()
		client := newClient(ctx)

		pterm.DefaultSection.Println("Menu Analysis")

		perf, err := client.RunQuery(ctx, "menu_item_performance", nil)
		if err != nil {
			dashboard.RenderSectionError("item performance", err)
		} else {
			f := dashboard.NewFrame(perf.Data,
				"Name", "Category", "TimesSold", "TotalQuantity", "TotalRevenue", "AvgPrice")
			dashboard.RenderBarChart("Revenue by Menu Item", f, "Name", "TotalRevenue", 10)

			// Category share is derived client-side from the per-item rows.
			byCategory := dashboard.GroupSum(f, "Category", "TotalRevenue", "TimesSold")
			dashboard.RenderBarChart("Revenue by Category", byCategory, "Category", "TotalRevenue", 0)
			dashboard.RenderTable(f, 15)
		}

		profit, err := client.RunQuery(ctx, "profit_analysis", nil)
		if err != nil {
			dashboard.RenderSectionError("profitability", err)
		} else {
			f := dashboard.NewFrame(profit.Data,
				"MenuItem", "CurrentPrice", "EstimatedCost", "ProfitPerUnit", "ProfitMargin", "TotalProfit")
			dashboard.RenderBarChart("Total Profit by Item", f, "MenuItem", "TotalProfit", 10)
			dashboard.RenderTable(f, 15)
		}

		if menuDate != "" {
			top, err := client.RunQuery(ctx, "top_menu_items_daily",
				map[string]string{"date": menuDate})
			if err != nil {
				dashboard.RenderSectionError("daily top sellers", err)
				return nil
			}
			pterm.DefaultSection.Println("Top Sellers on " + menuDate)
			if top.RowCount == 0 {
				pterm.Info.Println("no paid orders on " + menuDate)
				return nil
			}
			f := dashboard.NewFrame(top.Data, "MenuItem", "OrderCount", "TotalQuantity", "Revenue")
			dashboard.RenderTable(f, 0)
		}
		return nil
	},
}

//nolint:gochecknoinits // cobra wiring
func init() {
	menuCmd.Flags().StringVar(&menuDate, "date", "",
		"Show top sellers for this date (YYYY-MM-DD)")
	rootCmd.AddCommand(menuCmd)
}
