// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

// Package config loads and validates Expediter configuration from layered
// sources: struct defaults, an optional YAML file, and environment variables,
// with environment variables taking highest precedence.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration for the Expediter server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`
}

// DatabaseConfig holds the reporting database connection settings.
// Driver selects the SQL dialect and placeholder style; DSN is passed
// verbatim to the driver.
type DatabaseConfig struct {
	Driver       string `koanf:"driver" validate:"required"`
	DSN          string `koanf:"dsn" validate:"required"`
	SeedDemoData bool   `koanf:"seed_demo_data"`
}

// APIConfig holds settings for the reporting API surface.
type APIConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins" validate:"min=1"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"min=1s"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

var validate = validator.New()

// Validate checks the configuration for values that would prevent the
// server from operating. It returns the first problem found.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config field %s: failed %q constraint", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("config validation: %w", err)
	}
	if !driverSupported(c.Database.Driver) {
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

// supportedDrivers mirrors the driver registry in internal/database.
// Kept here so config validation does not import the driver packages.
var supportedDrivers = map[string]bool{
	"sqlite":    true,
	"sqlserver": true,
}

func driverSupported(name string) bool {
	return supportedDrivers[name]
}
