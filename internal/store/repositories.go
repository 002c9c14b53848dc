// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tag-sync/internal/config"
	"github.com/MKhiriev/go-tag-sync/internal/logger"
)

// Repositories groups the server-side repositories.
type Repositories struct {
	TagRepository        TagRepository
	SubscriberRepository SubscriberRepository

	db *DB
}

// NewRepositories connects to PostgreSQL, applies migrations and wires the
// repositories.
func NewRepositories(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		TagRepository:        NewTagRepository(db, logger),
		SubscriberRepository: NewSubscriberRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the database connection.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
