// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal front end of the contact
// book: a command prompt with history above a scrollback of results.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-contact-book/internal/command"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

// Executor runs one command line.
type Executor interface {
	Execute(ctx context.Context, line string) command.Result
}

type TUI struct {
	exec    Executor
	appName string
	info    models.AppBuildInfo
	logger  *logger.Logger
}

func New(exec Executor, appName string, info models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{exec: exec, appName: appName, info: info, logger: logger}
}

// Run blocks until the user quits with a command or a key.
func (t *TUI) Run(ctx context.Context) error {
	_, err := tea.NewProgram(newModel(ctx, t.exec, t.appName, t.info), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui stopped with error")
		return err
	}
	return nil
}
