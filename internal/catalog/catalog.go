// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

// Package catalog holds the fixed set of analytical queries exposed by the
// reporting API. The catalog is immutable after process start: queries are
// registered at init time and only read afterwards, so lookups need no
// locking.
package catalog

import "sort"

// Definition is one pre-built analytical query. Template is the SQL text
// with :name placeholders; Params lists the placeholder names a caller
// must supply, in declaration order.
type Definition struct {
	ID          string
	Name        string
	Description string
	Params      []string
	Template    string
}

var registry = map[string]Definition{}

func register(def Definition) {
	if _, dup := registry[def.ID]; dup {
		panic("catalog: duplicate query id " + def.ID)
	}
	registry[def.ID] = def
}

// Lookup returns the definition for the given query id.
func Lookup(id string) (Definition, bool) {
	def, ok := registry[id]
	return def, ok
}

// List returns every catalog definition sorted by id.
func List() []Definition {
	defs := make([]Definition, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}
