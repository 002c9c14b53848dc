// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs for the lifetime of a
// context.
package workers

import "context"

// Worker runs until ctx is done. A non-nil error stops every other worker
// of the same [Workers] set.
type Worker interface {
	Run(ctx context.Context) error
}
