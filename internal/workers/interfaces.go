// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// lifecycle workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any lifecycle worker.
// It defines a single Run method that performs the worker's job.
//
// Implementations are expected to block for the duration of their work and
// report failure through the returned error.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // do the job
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
