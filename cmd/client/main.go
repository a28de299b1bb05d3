// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/miam-miam/internal/adapter"
	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("miam-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if len(args) > 0 && args[0] == "build-info" {
		printBuildInfo()
		return
	}

	api, err := adapter.NewHTTPAPIClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	if err = run(context.Background(), api, args, os.Stdout); err != nil {
		log.Err(err).Strs("args", args).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
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
