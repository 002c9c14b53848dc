// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tag-sync/internal/adapter"
	"github.com/MKhiriev/go-tag-sync/internal/client"
	"github.com/MKhiriev/go-tag-sync/internal/config"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/service"
	"github.com/MKhiriev/go-tag-sync/internal/store"
	"github.com/MKhiriev/go-tag-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("tag-client", cfg.LogFile)
	log.Debug().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).BuildVersion()).Msg("client starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	app, err := client.NewApp(services, serverAdapter, cfg, os.Stdout, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}
