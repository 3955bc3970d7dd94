// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/service"
)

// autoLoadWorker restores the book from the configured snapshot path.
type autoLoadWorker struct {
	contacts service.ContactService
	logger   *logger.Logger
}

func (w *autoLoadWorker) Run(ctx context.Context) error {
	path, err := w.contacts.Load(ctx, "")
	if err != nil {
		w.logger.Err(err).Str("func", "autoLoadWorker.Run").Str("path", path).Msg("autoload failed")
		return fmt.Errorf("autoload %s: %w", path, err)
	}
	w.logger.Info().Str("func", "autoLoadWorker.Run").Str("path", path).Msg("contact book loaded")
	return nil
}

// autoSaveWorker writes the book to the configured snapshot path.
type autoSaveWorker struct {
	contacts service.ContactService
	logger   *logger.Logger
}

func (w *autoSaveWorker) Run(ctx context.Context) error {
	path, err := w.contacts.Save(ctx, "")
	if err != nil {
		w.logger.Err(err).Str("func", "autoSaveWorker.Run").Str("path", path).Msg("autosave failed")
		return fmt.Errorf("autosave %s: %w", path, err)
	}
	w.logger.Info().Str("func", "autoSaveWorker.Run").Str("path", path).Msg("contact book saved")
	return nil
}

// NewStartupWorkers returns the workers run before the UI starts.
func NewStartupWorkers(cfg config.ClientWorkers, contacts service.ContactService, log *logger.Logger) *Workers {
	var ws []Worker
	if cfg.AutoLoad {
		ws = append(ws, &autoLoadWorker{contacts: contacts, logger: log})
	}
	return New(ws...)
}

// NewShutdownWorkers returns the workers run after the UI exits.
func NewShutdownWorkers(cfg config.ClientWorkers, contacts service.ContactService, log *logger.Logger) *Workers {
	var ws []Worker
	if cfg.AutoSave {
		ws = append(ws, &autoSaveWorker{contacts: contacts, logger: log})
	}
	return New(ws...)
}
