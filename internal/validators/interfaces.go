// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks requests reaching the tag directory before they
// touch storage: subscriber identity, tag keys, declared lengths and the
// request hash.
package validators

import "context"

// Validator validates obj. When fields are given only those named checks
// run; otherwise all of them do.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
