// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-contact-book/internal/client"
	"github.com/MKhiriev/go-contact-book/internal/command"
	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/service"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/internal/tui"
	"github.com/MKhiriev/go-contact-book/internal/workers"
	"github.com/MKhiriev/go-contact-book/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if errors.Is(err, flag.ErrHelp) {
		config.PrintUsage(os.Stdout)
		return
	}
	if err != nil {
		logger.NewLogger("contact-book").Fatal().Err(err).Msg("error getting configs")
	}

	fmt.Println(buildInfo)

	log := logger.NewClientLogger(cfg.App.Name, cfg.Logger.File, cfg.Logger.Level)

	snapshots, err := store.NewSnapshotStore(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create snapshot store")
	}

	services := service.NewServices(cfg, snapshots, buildInfo, log)
	dispatcher := command.NewDispatcher(services, command.SystemClipboard(), cfg.App, log)
	ui := tui.New(dispatcher, cfg.App.Name, buildInfo, log)

	app := client.NewApp(
		cfg.UI,
		dispatcher,
		ui,
		workers.NewStartupWorkers(cfg.Workers, services.ContactService, log),
		workers.NewShutdownWorkers(cfg.Workers, services.ContactService, log),
		log,
	)

	if err = app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Fatal().Err(err).Msg("client run error")
	}
}
