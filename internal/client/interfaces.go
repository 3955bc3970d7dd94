// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-contact-book/internal/command"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is an interactive front end that owns the terminal until the user quits.
type UI interface {
	Run(ctx context.Context) error
}

// Executor runs one command line.
type Executor interface {
	Execute(ctx context.Context, line string) command.Result
}
