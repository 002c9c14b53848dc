// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors returned by the auth middleware while reading the "Authorization"
// header.
var (
	// ErrEmptyAuthorizationHeader: the header is absent.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header has no token part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the token part is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
