// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rgaleano/expediter/docs" // generated swagger docs
	"github.com/rgaleano/expediter/internal/api"
	"github.com/rgaleano/expediter/internal/config"
	"github.com/rgaleano/expediter/internal/database"
	"github.com/rgaleano/expediter/internal/executor"
	"github.com/rgaleano/expediter/internal/logging"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	conn, err := database.NewConnector(&cfg.Database)
	if err != nil {
		return err
	}

	if cfg.Database.SeedDemoData {
		if err := seedDemoData(conn); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
		logging.Info().Msg("demo dataset seeded")
	}

	// Verify the database before accepting traffic.
	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.Ping(pingCtx); err != nil {
		return fmt.Errorf("reporting database unreachable: %w", err)
	}

	handler := api.NewHandler(executor.New(conn), conn)
	router := api.NewRouter(handler, &cfg.API)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", addr).
			Str("driver", cfg.Database.Driver).
			Msg("reporting API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logging.Info().Msg("server stopped")
	return nil
}

func seedDemoData(conn *database.Connector) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := conn.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return database.SeedDemoData(ctx, db)
}
