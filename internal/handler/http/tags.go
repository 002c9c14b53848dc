// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tag-sync/internal/app"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/utils"
	"github.com/MKhiriev/go-tag-sync/models"
)

// maxTagsBodySize caps the PATCH /api/tags/ body.
const maxTagsBodySize = 1 << 20

func (h *Handler) getTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subscriberID, found := utils.GetSubscriberIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getTags").Msg("no subscriber ID was given")
		http.Error(w, app.MsgNoSubscriberIDProvided, http.StatusUnauthorized)
		return
	}

	response, err := h.services.TagService.GetTags(ctx, subscriberID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTags").Msg("error getting tags")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) applyTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subscriberID, found := utils.GetSubscriberIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.applyTags").Msg("no subscriber ID was given")
		http.Error(w, app.MsgNoSubscriberIDProvided, http.StatusUnauthorized)
		return
	}

	var request models.ApplyTagsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTagsBodySize)).Decode(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Err(err).Str("func", "*Handler.applyTags").Msg("request body too large")
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.applyTags").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.TagService.ApplyTags(ctx, subscriberID, request); err != nil {
		log.Err(err).Str("func", "*Handler.applyTags").Msg("error applying tag changes")
		writeError(w, err)
		return
	}

	log.Debug().Str("subscriber_id", subscriberID).Int("length", request.Length).Msg("tag changes applied")
	w.WriteHeader(http.StatusNoContent)
}
