// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-contact-book/internal/book"
	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/internal/store"
	"github.com/MKhiriev/go-contact-book/models"
)

type Services struct {
	ContactService ContactService
	AppInfoService AppInfoService
}

// NewServices wires the services around an empty book. The book is filled
// by ContactService.Load, usually from the autoload worker.
func NewServices(cfg *config.ClientConfig, snapshots store.SnapshotStore, info models.AppBuildInfo, log *logger.Logger) *Services {
	log.Info().Msg("creating services...")

	return &Services{
		ContactService: NewContactService(book.New(), snapshots, cfg.Storage, log),
		AppInfoService: NewAppInfoService(info, log),
	}
}
