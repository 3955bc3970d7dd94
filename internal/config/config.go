// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

// StructuredConfig is the top-level configuration container for the
// contact book. It is populated by merging values from command-line flags,
// environment variables, an optional config file and the defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds snapshot persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Logger holds log destination and verbosity.
	Logger Logger `envPrefix:"LOG_"`

	// UI selects the front end.
	UI UI `envPrefix:"UI_"`

	// Workers toggles the startup and shutdown jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is used as the "role" field of every log entry.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// PageSize is the number of contacts shown per page by "page".
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Storage groups the configuration for snapshot persistence.
type Storage struct {
	// Snapshot holds the default snapshot location and encoding.
	Snapshot Snapshot `envPrefix:"SNAPSHOT_"`
}

// Snapshot describes where and how the contact book is saved.
type Snapshot struct {
	// Path is the default snapshot file used by save/load without an
	// argument and by the autoload/autosave workers.
	// Env: STORAGE_SNAPSHOT_PATH
	Path string `env:"PATH"`

	// Format is one of "auto", "json" or "sqlite". With "auto" the format
	// is chosen by the file extension of each path.
	// Env: STORAGE_SNAPSHOT_FORMAT
	Format string `env:"FORMAT"`
}

// Logger holds log settings.
type Logger struct {
	// File is the path of the log file. The terminal belongs to the UI,
	// so logs never go to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// UI holds front-end settings.
type UI struct {
	// Mode is one of "auto", "tui" or "plain". "auto" starts the TUI only
	// when stdin and stdout are terminals.
	// Env: UI_MODE
	Mode string `env:"MODE"`
}

// Workers holds switches for the background jobs. Both jobs are enabled
// unless disabled here, so that a zero value never overrides a default.
type Workers struct {
	// DisableAutoLoad skips loading the default snapshot on startup.
	// Env: WORKERS_DISABLE_AUTOLOAD
	DisableAutoLoad bool `env:"DISABLE_AUTOLOAD"`

	// DisableAutoSave skips saving the default snapshot on exit.
	// Env: WORKERS_DISABLE_AUTOSAVE
	DisableAutoSave bool `env:"DISABLE_AUTOSAVE"`
}

// Supported values of Snapshot.Format.
const (
	FormatAuto   = "auto"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"
)

// Supported values of UI.Mode.
const (
	UIModeAuto  = "auto"
	UIModeTUI   = "tui"
	UIModePlain = "plain"
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     "contact-book",
			PageSize: 5,
		},
		Storage: Storage{
			Snapshot: Snapshot{
				Path:   "contacts.json",
				Format: FormatAuto,
			},
		},
		Logger: Logger{
			File:  "contact-book.log",
			Level: "info",
		},
		UI: UI{Mode: UIModeAuto},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// the process arguments and environment.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig is GetStructuredConfig with explicit command-line
// arguments (without the program name).
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}
