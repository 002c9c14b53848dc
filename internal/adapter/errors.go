// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork covers transport failures and retryable server statuses.
	ErrNetwork = errors.New("remote tag directory unreachable")

	// ErrServerRejected covers requests the directory refused.
	ErrServerRejected = errors.New("remote tag directory rejected request")

	// ErrUnauthorized is a rejection caused by a missing or invalid token.
	ErrUnauthorized = fmt.Errorf("%w: unauthorized", ErrServerRejected)

	// ErrHashMismatch is a rejection caused by client and directory using
	// different hash keys.
	ErrHashMismatch = fmt.Errorf("%w: tag changes hash mismatch", ErrServerRejected)

	// ErrInvalidResponse marks a 2xx response whose body could not be used.
	ErrInvalidResponse = fmt.Errorf("%w: invalid response", ErrServerRejected)
)
