// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package book

import cfg "github.com/MKhiriev/go-contact-book/internal/config"

func config() cfg.ClientStorage {
	return cfg.ClientStorage{Format: cfg.FormatAuto}
}
