// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tag-sync/internal/config"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/internal/store"
	"github.com/MKhiriev/go-tag-sync/internal/utils"
	"github.com/MKhiriev/go-tag-sync/models"
)

// maxRegistrationAttempts bounds retries after a subscriber ID collision.
const maxRegistrationAttempts = 3

// authService is the concrete implementation of AuthService.
// It registers anonymous subscribers and handles the JWT token lifecycle.
type authService struct {
	// subscriberRepository persists newly registered subscribers.
	subscriberRepository store.SubscriberRepository

	// newID issues subscriber IDs.
	newID func() string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// SubscriberRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(subscriberRepository store.SubscriberRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		subscriberRepository: subscriberRepository,
		newID:                utils.NewUUIDGenerator().Generate,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		logger:               logger,
	}
}

// RegisterSubscriber creates a subscriber with a fresh UUIDv7 ID.
//
// An ID collision is retried with a new ID a bounded number of times.
// Any other repository failure is wrapped in ErrRegistrationFailed.
func (a *authService) RegisterSubscriber(ctx context.Context) (models.Subscriber, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt < maxRegistrationAttempts; attempt++ {
		subscriber, err := a.subscriberRepository.CreateSubscriber(ctx, models.Subscriber{SubscriberID: a.newID()})
		if err == nil {
			return subscriber, nil
		}

		lastErr = err
		if !errors.Is(err, store.ErrSubscriberAlreadyExists) {
			break
		}
		log.Warn().Str("func", "authService.RegisterSubscriber").Msg("subscriber ID collision, retrying")
	}

	log.Err(lastErr).Str("func", "authService.RegisterSubscriber").Msg("subscriber creation ended with error")
	return models.Subscriber{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, lastErr)
}

// CreateToken issues a signed JWT for the given subscriber.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, subscriber models.Subscriber) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subscriber.SubscriberID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
