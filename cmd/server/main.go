// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tag-sync/internal/config"
	"github.com/MKhiriev/go-tag-sync/internal/handler"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/server"
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
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("tag-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Msg("received configs")

	repositories, err := store.NewRepositories(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repositories.Close()

	services, err := service.NewServices(repositories, *cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		return
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating handlers")
		return
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
