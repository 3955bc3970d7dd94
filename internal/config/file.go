// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of a config file. The same
// structure is read from JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		Name     string `json:"name" yaml:"name"`
		PageSize int    `json:"page_size" yaml:"page_size"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		Snapshot struct {
			Path   string `json:"path" yaml:"path"`
			Format string `json:"format" yaml:"format"`
		} `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Logger struct {
		File  string `json:"file" yaml:"file"`
		Level string `json:"level" yaml:"level"`
	} `json:"logger,omitempty" yaml:"logger,omitempty"`

	UI struct {
		Mode string `json:"mode" yaml:"mode"`
	} `json:"ui,omitempty" yaml:"ui,omitempty"`

	Workers struct {
		DisableAutoLoad bool `json:"disable_autoload" yaml:"disable_autoload"`
		DisableAutoSave bool `json:"disable_autosave" yaml:"disable_autosave"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(file)
		dec.KnownFields(true)
		if err := dec.Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		dec := json.NewDecoder(file)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Name:     fileCfg.App.Name,
			PageSize: fileCfg.App.PageSize,
		},
		Storage: Storage{
			Snapshot: Snapshot{
				Path:   fileCfg.Storage.Snapshot.Path,
				Format: fileCfg.Storage.Snapshot.Format,
			},
		},
		Logger: Logger{
			File:  fileCfg.Logger.File,
			Level: fileCfg.Logger.Level,
		},
		UI: UI{Mode: fileCfg.UI.Mode},
		Workers: Workers{
			DisableAutoLoad: fileCfg.Workers.DisableAutoLoad,
			DisableAutoSave: fileCfg.Workers.DisableAutoSave,
		},
	}, nil
}
