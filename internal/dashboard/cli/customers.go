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

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Loyalty tiers, top spenders, and monthly retention",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := viewContext()
		defer cancel()
		client := newClient(ctx)

		pterm.DefaultSection.Println("Customer Analysis")

		loyalty, err := client.RunQuery(ctx, "customer_loyalty", nil)
		if err != nil {
			dashboard.RenderSectionError("loyalty", err)
		} else {
			f := dashboard.NewFrame(loyalty.Data,
				"CustomerName", "LoyaltyTier", "TotalOrders", "TotalSpent", "AvgOrderValue")

			tiers := dashboard.CountBy(f, "LoyaltyTier")
			dashboard.RenderBarChart("Customers per Loyalty Tier", tiers, "LoyaltyTier", "Count", 0)

			// Rows arrive sorted by TotalSpent descending.
			dashboard.RenderBarChart("Top Spenders", f, "CustomerName", "TotalSpent", 10)
			dashboard.RenderTable(f, 15)
		}

		retention, err := client.RunQuery(ctx, "customer_retention", nil)
		if err != nil {
			dashboard.RenderSectionError("retention", err)
			return nil
		}
		f := dashboard.NewFrame(retention.Data,
			"Year", "Month", "TotalCustomers", "ReturnedCustomers", "RetentionRate")
		pterm.DefaultSection.Println("Monthly Retention")
		dashboard.RenderTable(f, 0)
		return nil
	},
}

//nolint:gochecknoinits // cobra wiring
func init() {
	rootCmd.AddCommand(customersCmd)
}
