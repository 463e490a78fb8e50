// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

// Command dashboard runs the Expediter terminal dashboard, a CLI client
// for the reporting API.
package main

import "github.com/rgaleano/expediter/internal/dashboard/cli"

func main() {
	cli.Execute()
}
