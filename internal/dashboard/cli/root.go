// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

// Package cli implements the terminal dashboard: one cobra subcommand per
// view, all reading from the reporting API and rendering with pterm.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rgaleano/expediter/internal/dashboard"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:           "expediter-dash",
	Short:         "Terminal dashboard for the Expediter reporting API",
	Long:          "expediter-dash renders restaurant analytics from a running Expediter server:\noverview metrics, menu performance, customer loyalty, staff and revenue views,\nand ad-hoc read-only queries.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute runs the dashboard CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // cobra wiring
func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url",
		"http://localhost:8080/api", "Base URL of the reporting API")
}

// newClient builds the API client and warns once when the API is down
// rather than failing; individual views report their own errors.
func newClient(ctx context.Context) *dashboard.Client {
	client := dashboard.NewClient(apiURL)
	if !client.Healthy(ctx) {
		pterm.Warning.Printf("reporting API at %s is not healthy; views may be empty\n", apiURL)
	}
	return client
}

// viewContext bounds one dashboard view end to end.
func viewContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Minute)
}
