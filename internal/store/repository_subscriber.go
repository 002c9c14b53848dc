// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/models"
	"github.com/jackc/pgerrcode"
)

type subscriberRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSubscriberRepository(db *DB, logger *logger.Logger) SubscriberRepository {
	logger.Debug().Msg("creating subscriber repository")
	return &subscriberRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSubscriber inserts a subscriber and returns it with CreatedAt set.
// A duplicate ID yields [ErrSubscriberAlreadyExists].
func (r *subscriberRepository) CreateSubscriber(ctx context.Context, subscriber models.Subscriber) (models.Subscriber, error) {
	log := logger.FromContext(ctx)

	var created models.Subscriber
	err := r.db.QueryRowContext(ctx, createSubscriber, subscriber.SubscriberID).
		Scan(&created.SubscriberID, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*subscriberRepository.CreateSubscriber").Msg("error creating subscriber")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Subscriber{}, ErrSubscriberAlreadyExists
		default:
			return models.Subscriber{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (r *subscriberRepository) SubscriberExists(ctx context.Context, subscriberID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, subscriberExists, subscriberID).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*subscriberRepository.SubscriberExists").Msg("error looking up subscriber")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
