// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors. Match with [errors.Is].
var (
	// ErrSubscriberAlreadyExists: the generated subscriber ID collided.
	ErrSubscriberAlreadyExists = errors.New("subscriber already exists")

	// ErrSubscriberNotFound: a tag write referenced an unknown subscriber.
	ErrSubscriberNotFound = errors.New("subscriber not found")

	// ErrLocalSessionNotFound: the client has not registered yet.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrCorruptedJournal: a persisted pending change could not be decoded.
	ErrCorruptedJournal = errors.New("pending tag journal is corrupted")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
