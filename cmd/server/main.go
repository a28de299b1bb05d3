// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/miam-miam/internal/cache"
	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/events"
	"github.com/MKhiriev/miam-miam/internal/handler"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/server"
	"github.com/MKhiriev/miam-miam/internal/service"
	"github.com/MKhiriev/miam-miam/internal/store"
	"github.com/MKhiriev/miam-miam/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("miam-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	listingCache, err := cache.NewListingCache(ctx, cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating listing cache")
	}
	if closer, ok := listingCache.(io.Closer); ok {
		defer closer.Close()
	}

	publisher, err := events.NewPublisher(cfg.Events, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating event publisher")
	}
	defer publisher.Close()

	services, err := service.NewServices(storages, listingCache, publisher, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewJanitor("rate-limit", handlers.HTTP.RateLimiter(), cfg.Server.RateWindow, log),
	)

	srv, err := server.NewServer(handlers, cfg.Server, background, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
