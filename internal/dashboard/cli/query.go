// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rgaleano/expediter/internal/dashboard"
)

var queryCSVPath string

var queryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Run an ad-hoc read-only SELECT against the reporting store",
	Long:  "Runs a SELECT through the API's restricted custom-query endpoint.\nThe server rejects anything that is not a plain SELECT.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx, cancel := viewContext()
		defer cancel()
		client := newClient(ctx)

		sql := strings.Join(args, " ")

		result, err := client.RunCustom(ctx, sql)
		if err != nil {
			return err
		}

		pterm.Printf("%d rows\n", result.RowCount)
		if result.RowCount == 0 {
			return nil
		}

		f := dashboard.NewFrame(result.Data)
		dashboard.RenderTable(f, 50)

		if queryCSVPath != "" {
			out, err := os.Create(queryCSVPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", queryCSVPath, err)
			}
			defer out.Close()
			if err := dashboard.WriteCSV(f, out); err != nil {
				return err
			}
			pterm.Success.Println("wrote " + queryCSVPath)
		}
		return nil
	},
}

//nolint:gochecknoinits // cobra wiring
func init() {
	queryCmd.Flags().StringVar(&queryCSVPath, "csv", "",
		"Also export the full result to this CSV file")
	rootCmd.AddCommand(queryCmd)
}
