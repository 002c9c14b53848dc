// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/models"
)

type localTagRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalTagRepository(db *DB, logger *logger.Logger) LocalTagRepository {
	return &localTagRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localTagRepository) LoadPending(ctx context.Context) (models.TagDelta, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, selectPendingTags)
	if err != nil {
		log.Err(err).Str("func", "localTagRepository.LoadPending").Msg("failed to query pending tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	delta := make(models.TagDelta)
	for rows.Next() {
		var key, op, kind, text string
		if err = rows.Scan(&key, &op, &kind, &text); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		switch models.OpKind(op) {
		case models.OpDelete:
			delta[key] = models.DeleteOp()
		case models.OpSet:
			value, valueErr := models.NewTagValue(models.ValueKind(kind), text)
			if valueErr != nil {
				return nil, fmt.Errorf("%w: tag %q: %w", ErrCorruptedJournal, key, valueErr)
			}
			delta[key] = models.SetOp(value)
		default:
			return nil, fmt.Errorf("%w: tag %q: unknown op %q", ErrCorruptedJournal, key, op)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return delta, nil
}

// ReplacePending rewrites the whole journal inside one transaction.
func (l *localTagRepository) ReplacePending(ctx context.Context, delta models.TagDelta) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localTagRepository.ReplacePending").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearPendingTags); err != nil {
		log.Err(err).Str("func", "localTagRepository.ReplacePending").Msg("failed to clear pending tags")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, key := range delta.Keys() {
		op := delta[key]

		var kind, text string
		if op.Kind == models.OpSet {
			kind, text = string(op.Value.Kind()), op.Value.String()
		}

		if _, err = tx.ExecContext(ctx, insertPendingTag, key, string(op.Kind), kind, text); err != nil {
			log.Err(err).
				Str("func", "localTagRepository.ReplacePending").
				Str("tag_key", key).
				Msg("failed to insert pending tag")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localTagRepository.ReplacePending").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localTagRepository) SaveSession(ctx context.Context, session models.Session) error {
	if _, err := l.DB.ExecContext(ctx, upsertSession, session.SubscriberID, session.Token, session.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localTagRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localTagRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	err := l.DB.QueryRowContext(ctx, selectSession).
		Scan(&session.SubscriberID, &session.Token, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localTagRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}
