// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package api

import "testing"

func TestCheckReadOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "plain select",
			query: "SELECT * FROM ORDERS",
			want:  "",
		},
		{
			name:  "lowercase select",
			query: "select Name from MENUITEMS",
			want:  "",
		},
		{
			name:  "leading whitespace",
			query: "   \n\tSELECT 1",
			want:  "",
		},
		{
			name:  "update statement",
			query: "UPDATE ORDERS SET TotalAmount = 0",
			want:  "Only SELECT queries are allowed",
		},
		{
			name:  "empty string",
			query: "",
			want:  "Only SELECT queries are allowed",
		},
		{
			name:  "stacked drop after select",
			query: "SELECT * FROM ORDERS; DROP TABLE ORDERS",
			want:  "Query contains forbidden keyword: DROP",
		},
		{
			name:  "delete inside select",
			query: "SELECT * FROM ORDERS WHERE Note = 'DELETE me'",
			want:  "Query contains forbidden keyword: DELETE",
		},
		{
			name:  "keyword inside identifier still rejected",
			query: "SELECT * FROM UPDATES",
			want:  "Query contains forbidden keyword: UPDATE",
		},
		{
			name:  "lowercase keyword rejected",
			query: "SELECT 1; drop table x",
			want:  "Query contains forbidden keyword: DROP",
		},
		{
			name:  "non-select prefix wins over keyword message",
			query: "DROP TABLE ORDERS",
			want:  "Only SELECT queries are allowed",
		},
		{
			name:  "truncate rejected",
			query: "SELECT 1; TRUNCATE TABLE ORDERS",
			want:  "Query contains forbidden keyword: TRUNCATE",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := checkReadOnly(tt.query); got != tt.want {
				t.Errorf("checkReadOnly(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
