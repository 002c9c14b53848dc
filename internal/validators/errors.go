// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySubscriberID = errors.New("subscriber ID is required")
	ErrEmptyChanges      = errors.New("tag changes list cannot be empty")
	ErrLengthMismatch    = errors.New("length does not match number of tag changes")
	ErrInvalidTagKey     = errors.New("invalid tag key")
	ErrInvalidTagValue   = errors.New("invalid tag value")
	ErrConflictingChange = errors.New("tag key is both set and deleted")
	ErrDuplicateDelete   = errors.New("tag key is deleted twice")
	ErrInvalidHash       = errors.New("invalid hash")
)
