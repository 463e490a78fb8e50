// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package database

import (
	"fmt"
	"sort"

	_ "github.com/denisenkom/go-mssqldb" // registers the "sqlserver" driver
	_ "modernc.org/sqlite"               // registers the "sqlite" driver (pure Go, no cgo)
)

// PlaceholderFunc renders the bind-parameter marker for the 1-based
// ordinal i in a driver's native syntax.
type PlaceholderFunc func(i int) string

// drivers maps a supported driver name to its placeholder style.
// SQLite uses positional '?'; SQL Server uses '@p1', '@p2', ...
var drivers = map[string]PlaceholderFunc{
	"sqlite":    func(int) string { return "?" },
	"sqlserver": func(i int) string { return fmt.Sprintf("@p%d", i) },
}

// SupportedDrivers returns the supported driver names, sorted.
func SupportedDrivers() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
