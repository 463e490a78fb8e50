// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package api

import "strings"

// forbiddenKeywords are rejected anywhere in an ad-hoc query, even inside
// identifiers or string literals. The guard is a lexical tripwire for an
// endpoint that should only ever see SELECTs, not a SQL parser; false
// positives are acceptable, false negatives on these words are not.
var forbiddenKeywords = []string{
	"DROP",
	"DELETE",
	"UPDATE",
	"INSERT",
	"TRUNCATE",
	"ALTER",
	"CREATE",
	"EXEC",
	"EXECUTE",
}

// checkReadOnly validates an ad-hoc query: it must start with SELECT
// (case-insensitive, after trimming) and must not contain any forbidden
// keyword. The returned message is suitable for the API error body; an
// empty string means the query passed.
func checkReadOnly(query string) string {
	upper := strings.ToUpper(strings.TrimSpace(query))

	if !strings.HasPrefix(upper, "SELECT") {
		return "Only SELECT queries are allowed"
	}

	for _, keyword := range forbiddenKeywords {
		if strings.Contains(upper, keyword) {
			return "Query contains forbidden keyword: " + keyword
		}
	}

	return ""
}
