// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

// Package main provides the Expediter reporting API server
//
// @title Expediter Reporting API
// @version 1.0
// @description Restaurant operations analytics: a catalog of parameterized reports, ad-hoc read-only queries, and dashboard summary metrics.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. The /metrics and /swagger endpoints are exempt.
// @description
// @description ## Error Responses
// @description
// @description All error responses are `{"error": "message"}`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/rgaleano/expediter/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api
// @schemes http
//
// @tag.name Core
// @tag.description Health checks and dashboard summary metrics
//
// @tag.name Reports
// @tag.description Catalog report execution and ad-hoc read-only queries
package main
