// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tag-sync/internal/adapter"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/store"
	"github.com/MKhiriev/go-tag-sync/models"
)

type clientSessionService struct {
	sessions store.LocalTagRepository
	adapter  adapter.ServerAdapter

	logger *logger.Logger
}

// NewClientSessionService returns the service that registers the client at
// the directory and keeps its bearer token on the adapter.
func NewClientSessionService(sessions store.LocalTagRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientSessionService {
	return &clientSessionService{sessions: sessions, adapter: serverAdapter, logger: log}
}

// Register creates a subscriber on the server and persists the issued
// session locally. The adapter keeps the token for subsequent calls.
func (s *clientSessionService) Register(ctx context.Context) (models.Session, error) {
	session, err := s.adapter.Register(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Register").Msg("registration on server failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	if err = s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Register").Msg("saving session failed")
		return models.Session{}, fmt.Errorf("saving session: %w", err)
	}

	s.logger.Info().
		Str("func", "clientSessionService.Register").
		Str("subscriber_id", session.SubscriberID).
		Msg("registered at tag directory")
	return session, nil
}

// Restore loads the persisted session and hands its token to the adapter.
// ErrNotRegistered is returned before the first successful Register.
func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotRegistered
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("loading session: %w", err)
	}
	if session.IsZero() {
		return models.Session{}, ErrNotRegistered
	}

	s.adapter.SetToken(session.Token)
	return session, nil
}
