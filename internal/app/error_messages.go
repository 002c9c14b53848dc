// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds message strings shared by the tag directory handlers
// and the client adapter, so both ends agree on wording.
package app

const (
	// MsgInvalidDataProvided: the body could not be decoded or failed
	// basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	MsgInternalServerError = "internal server error"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoTagsProvided: a PATCH /api/tags/ body carried no changes.
	MsgNoTagsProvided = "no tag changes provided"

	// MsgTagsLengthMismatch: the declared length differs from the number of
	// changes in the body.
	MsgTagsLengthMismatch = "tag changes length mismatch"

	// MsgTagsHashMismatch: the HMAC over the delta does not match.
	MsgTagsHashMismatch = "tag changes hash mismatch"

	// MsgInvalidTagKey: a tag key is empty or too long.
	MsgInvalidTagKey = "invalid tag key"

	// MsgConflictingTagChange: one key is both set and deleted.
	MsgConflictingTagChange = "tag is both set and deleted"

	MsgNoSubscriberIDProvided = "no subscriber ID provided"

	MsgSubscriberNotFound = "subscriber not found"

	MsgRegistrationFailed = "registration failed"
)
