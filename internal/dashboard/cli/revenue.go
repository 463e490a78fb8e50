// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rgaleano/expediter/internal/dashboard"
)

var (
	revenueYear string
	revenueDate string
)

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Monthly trends, order-type mix, and hourly distribution",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := viewContext()
		defer cancel()
		client := newClient(ctx)

		year := revenueYear
		if year == "" {
			year = strconv.Itoa(time.Now().Year())
		}

		pterm.DefaultSection.Println("Revenue Analysis " + year)

		monthly, err := client.RunQuery(ctx, "monthly_trends", map[string]string{"year": year})
		if err != nil {
			dashboard.RenderSectionError("monthly trends", err)
		} else if monthly.RowCount == 0 {
			pterm.Info.Println("no paid orders in " + year)
		} else {
			f := dashboard.NewFrame(monthly.Data,
				"MonthName", "TotalOrders", "Revenue", "AvgOrderValue", "UniqueCustomers")
			dashboard.RenderBarChart("Revenue by Month", f, "MonthName", "Revenue", 12)

			// Unpivot the order-type columns so the mix reads as one table.
			mix := dashboard.WideToLong(dashboard.NewFrame(monthly.Data, "MonthName"),
				"MonthName",
				[]string{"DineInOrders", "TakeoutOrders", "DeliveryOrders"},
				"OrderType", "Orders")
			pterm.DefaultSection.Println("Order Type Mix")
			dashboard.RenderTable(mix, 0)

			dashboard.RenderTable(f, 0)
		}

		if revenueDate != "" {
			hourly, err := client.RunQuery(ctx, "hourly_orders", map[string]string{"date": revenueDate})
			if err != nil {
				dashboard.RenderSectionError("hourly distribution", err)
				return nil
			}
			pterm.DefaultSection.Println("Hourly Distribution " + revenueDate)
			if hourly.RowCount == 0 {
				pterm.Info.Println("no paid orders on " + revenueDate)
				return nil
			}

			f := dashboard.NewFrame(hourly.Data, "Hour", "OrderCount", "Revenue")
			dashboard.RenderBarChart("Orders by Hour", f, "Hour", "OrderCount", 24)

			if peak, ok := dashboard.MaxRow(f, "OrderCount"); ok {
				dashboard.RenderMetric("Peak Hour", dashboard.CellString(peak["Hour"])+":00")
			}
			dashboard.RenderMetric("Day Revenue",
				fmt.Sprintf("%.2f", dashboard.SumColumn(f, "Revenue")))
		}
		return nil
	},
}

//nolint:gochecknoinits // cobra wiring
func init() {
	revenueCmd.Flags().StringVar(&revenueYear, "year", "",
		"Year for monthly trends (default: current year)")
	revenueCmd.Flags().StringVar(&revenueDate, "date", "",
		"Show hourly distribution for this date (YYYY-MM-DD)")
	rootCmd.AddCommand(revenueCmd)
}
