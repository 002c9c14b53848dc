// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tag-sync/internal/app"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/utils"
	"github.com/MKhiriev/go-tag-sync/models"
)

// registerSubscriber creates an anonymous subscriber and returns its bearer
// token in the Authorization header.
func (h *Handler) registerSubscriber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subscriber, err := h.services.AuthService.RegisterSubscriber(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerSubscriber").Msg("subscriber registration failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, subscriber)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerSubscriber").Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("subscriber_id", subscriber.SubscriberID).Msg("subscriber registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.SubscriberResponse{SubscriberID: subscriber.SubscriberID}, http.StatusCreated)
}
