// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tag-sync/internal/app"
	"github.com/MKhiriev/go-tag-sync/internal/service"
	"github.com/MKhiriev/go-tag-sync/internal/store"
)

type errorResponse struct {
	err     error
	status  int
	message string
}

// errorResponses is matched in order: service errors wrap store errors, so
// they come first.
var errorResponses = []errorResponse{
	{service.ErrValidationNoSubscriberID, http.StatusUnauthorized, app.MsgNoSubscriberIDProvided},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrValidationNoTagsProvided, http.StatusBadRequest, app.MsgNoTagsProvided},
	{service.ErrValidationTagsLengthMismatch, http.StatusBadRequest, app.MsgTagsLengthMismatch},
	{service.ErrValidationTagsHashMismatch, http.StatusBadRequest, app.MsgTagsHashMismatch},
	{service.ErrValidationInvalidTagKey, http.StatusBadRequest, app.MsgInvalidTagKey},
	{service.ErrValidationConflictingTagChange, http.StatusBadRequest, app.MsgConflictingTagChange},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},
	{service.ErrRegistrationFailed, http.StatusInternalServerError, app.MsgRegistrationFailed},

	{store.ErrSubscriberAlreadyExists, http.StatusConflict, app.MsgRegistrationFailed},
	{store.ErrSubscriberNotFound, http.StatusNotFound, app.MsgSubscriberNotFound},
}

// responseFromError returns the status and message of the first entry in
// err's chain. Unknown errors, storage failures included, are a 500.
func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError replies with the status and message mapped from err.
func writeError(w http.ResponseWriter, err error) {
	status, message := responseFromError(err)
	http.Error(w, message, status)
}
