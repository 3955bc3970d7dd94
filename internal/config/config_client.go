// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
)

// ClientApp holds application settings of the running client.
type ClientApp struct {
	// Name is the log role of the process.
	Name string
	// PageSize is the default page size of the "page" command.
	PageSize int
}

// ClientStorage contains snapshot settings for the client.
type ClientStorage struct {
	// SnapshotPath is the default snapshot file.
	SnapshotPath string
	// Format is the snapshot encoding (auto, json, sqlite).
	Format string
}

// ClientLogger contains log settings for the client.
type ClientLogger struct {
	// File is the log file path.
	File string
	// Level is the minimal zerolog level.
	Level string
}

// ClientUI contains front-end settings.
type ClientUI struct {
	// Mode is auto, tui or plain.
	Mode string
}

// ClientWorkers contains startup and shutdown job settings.
type ClientWorkers struct {
	// AutoLoad loads the default snapshot before the UI starts.
	AutoLoad bool
	// AutoSave saves the book to the default snapshot after the UI exits.
	AutoSave bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Logger  ClientLogger
	UI      ClientUI
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client config view from the
// process arguments and environment.
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig is GetClientConfig with explicit command-line arguments.
//
// It loads the base config via [LoadStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func LoadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := LoadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Name:     cfg.App.Name,
			PageSize: cfg.App.PageSize,
		},
		Storage: ClientStorage{
			SnapshotPath: cfg.Storage.Snapshot.Path,
			Format:       cfg.Storage.Snapshot.Format,
		},
		Logger: ClientLogger{
			File:  cfg.Logger.File,
			Level: cfg.Logger.Level,
		},
		UI: ClientUI{Mode: cfg.UI.Mode},
		Workers: ClientWorkers{
			AutoLoad: !cfg.Workers.DisableAutoLoad,
			AutoSave: !cfg.Workers.DisableAutoSave,
		},
	}

	return clientCfg, clientCfg.validate()
}
