// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the tag directory process.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down
	// gracefully. It returns the first serving error.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx is done.
	Shutdown(ctx context.Context) error
}
