// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the startup and shutdown workers, the command dispatcher and the
// terminal front end (full-screen TUI or a plain line loop) into a single
// process lifecycle.
package client
