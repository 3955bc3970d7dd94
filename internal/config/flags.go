// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

type flagValues struct {
	snapshotPath   string
	snapshotFormat string
	configPath     string
	logFile        string
	logLevel       string
	pageSize       int
	uiMode         string
	noAutoLoad     bool
	noAutoSave     bool
}

func newFlagSet(v *flagValues) *flag.FlagSet {
	fs := flag.NewFlagSet("contact-book", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&v.snapshotPath, "f", "", "Snapshot file path")
	fs.StringVar(&v.snapshotFormat, "format", "", "Snapshot format: auto, json or sqlite")
	fs.StringVar(&v.configPath, "c", "", "Config file path")
	fs.StringVar(&v.configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&v.logFile, "log-file", "", "Log file path")
	fs.StringVar(&v.logLevel, "log-level", "", "Log level")
	fs.IntVar(&v.pageSize, "page-size", 0, "Contacts per page")
	fs.StringVar(&v.uiMode, "ui", "", "Front end: auto, tui or plain")
	fs.BoolVar(&v.noAutoLoad, "no-autoload", false, "Do not load the snapshot on startup")
	fs.BoolVar(&v.noAutoSave, "no-autosave", false, "Do not save the snapshot on exit")

	return fs
}

// PrintUsage writes the flag reference to w. It is used when the flags
// contain -h or -help, which LoadClientConfig reports as flag.ErrHelp.
func PrintUsage(w io.Writer) {
	fs := newFlagSet(&flagValues{})
	fs.SetOutput(w)
	fmt.Fprintln(w, "Usage of contact-book:")
	fs.PrintDefaults()
}

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-f default snapshot file path
//	-format snapshot format (auto, json, sqlite)
//	-c/-config config file path (JSON or YAML)
//	-log-file log file path
//	-log-level log level
//	-page-size contacts per page
//	-ui front end (auto, tui, plain)
//	-no-autoload do not load the snapshot on startup
//	-no-autosave do not save the snapshot on exit
func parseFlags(args []string) (*StructuredConfig, error) {
	var v flagValues
	if err := newFlagSet(&v).Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{PageSize: v.pageSize},
		Storage: Storage{
			Snapshot: Snapshot{
				Path:   v.snapshotPath,
				Format: v.snapshotFormat,
			},
		},
		Logger: Logger{
			File:  v.logFile,
			Level: v.logLevel,
		},
		UI: UI{Mode: v.uiMode},
		Workers: Workers{
			DisableAutoLoad: v.noAutoLoad,
			DisableAutoSave: v.noAutoSave,
		},
		ConfigFilePath: v.configPath,
	}, nil
}
