// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

// Package database provides connection management for the reporting store.
//
// The reporting layer deliberately opens a fresh connection per request
// instead of sharing a pool: report queries are infrequent and long-lived
// pools against the operational database have caused lock contention in
// the past. Connector encapsulates that discipline.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rgaleano/expediter/internal/config"
	"github.com/rgaleano/expediter/internal/logging"
)

// Connector opens single-use connections to the configured reporting
// database. It is safe for concurrent use; each Open call is independent.
type Connector struct {
	driver string
	dsn    string
}

// NewConnector validates the driver name and returns a Connector.
// No connection is made until Open is called.
func NewConnector(cfg *config.DatabaseConfig) (*Connector, error) {
	if _, ok := drivers[cfg.Driver]; !ok {
		return nil, fmt.Errorf("unsupported database driver %q (supported: %v)", cfg.Driver, SupportedDrivers())
	}
	return &Connector{driver: cfg.Driver, dsn: cfg.DSN}, nil
}

// Driver returns the configured driver name.
func (c *Connector) Driver() string {
	return c.driver
}

// Open establishes a verified connection. The returned handle is capped at
// one underlying connection; the caller must Close it when done.
func (c *Connector) Open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(c.driver, c.dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", c.driver, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("closing database handle after failed ping")
		}
		return nil, fmt.Errorf("ping %s database: %w", c.driver, err)
	}

	return db, nil
}

// Ping opens and immediately closes a connection to verify reachability.
func (c *Connector) Ping(ctx context.Context) error {
	db, err := c.Open(ctx)
	if err != nil {
		return err
	}
	return db.Close()
}

// Placeholder returns the bind-parameter marker function for the
// configured driver. The argument is the 1-based parameter ordinal.
func (c *Connector) Placeholder() PlaceholderFunc {
	return drivers[c.driver]
}
