// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package cli

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "List the pre-built report queries",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, cancel := viewContext()
		defer cancel()
		client := newClient(ctx)

		queries, err := client.ListQueries(ctx)
		if err != nil {
			return err
		}

		data := pterm.TableData{{"ID", "Name", "Parameters", "Description"}}
		for _, q := range queries {
			params := strings.Join(q.Params, ", ")
			if params == "" {
				params = "-"
			}
			data = append(data, []string{q.ID, q.Name, params, q.Description})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

//nolint:gochecknoinits // cobra wiring
func init() {
	rootCmd.AddCommand(queriesCmd)
}
