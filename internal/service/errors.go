// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrRegistrationFailed      = errors.New("subscriber registration failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrValidationNoTagsProvided       = errors.New("no tag changes provided")
	ErrValidationTagsLengthMismatch   = errors.New("tag changes length mismatch")
	ErrValidationTagsHashMismatch     = errors.New("tag changes hash mismatch")
	ErrValidationInvalidTagKey        = errors.New("invalid tag key")
	ErrValidationConflictingTagChange = errors.New("tag is both set and deleted")
	ErrValidationNoSubscriberID       = errors.New("no subscriber ID was given")
)

// Client-side errors.
var (
	// ErrTagSyncFailed wraps the adapter error of a failed sync attempt. The
	// attempt's changes are back in the pending cache when it is returned.
	ErrTagSyncFailed = errors.New("tag sync failed")

	// ErrNotRegistered is returned by client operations that need a session.
	ErrNotRegistered = errors.New("client is not registered")
)
