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

// tagRepository is the PostgreSQL implementation of [TagRepository].
type tagRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

// ApplyDelta runs the upsert and the delete in one transaction. A transient
// failure (see [PostgresErrorClassifier]) is retried once.
func (r *tagRepository) ApplyDelta(ctx context.Context, subscriberID string, delta models.TagDelta) error {
	if delta.IsEmpty() {
		return nil
	}

	err := r.applyDelta(ctx, subscriberID, delta)
	if err != nil && r.db.isRetryable(err) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "tagRepository.ApplyDelta").
			Str("subscriber_id", subscriberID).
			Msg("transient database error, retrying once")
		err = r.applyDelta(ctx, subscriberID, delta)
	}

	return err
}

func (r *tagRepository) applyDelta(ctx context.Context, subscriberID string, delta models.TagDelta) error {
	log := logger.FromContext(ctx)
	set, deleted := delta.Split()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "tagRepository.applyDelta").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if len(set) > 0 {
		query, args, buildErr := buildUpsertTagsQuery(subscriberID, set)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "tagRepository.applyDelta").
				Str("subscriber_id", subscriberID).
				Int("count", len(set)).
				Msg("failed to upsert tags")
			if postgresError(err) == pgerrcode.ForeignKeyViolation {
				return ErrSubscriberNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if len(deleted) > 0 {
		query, args, buildErr := buildDeleteTagsQuery(subscriberID, deleted)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "tagRepository.applyDelta").
				Str("subscriber_id", subscriberID).
				Int("count", len(deleted)).
				Msg("failed to delete tags")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "tagRepository.applyDelta").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *tagRepository) GetTags(ctx context.Context, subscriberID string) (map[string]models.TagValue, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTagsQuery(subscriberID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "tagRepository.GetTags").Str("subscriber_id", subscriberID).Msg("failed to query tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make(map[string]models.TagValue)
	for rows.Next() {
		var key, kind, text string
		if err = rows.Scan(&key, &kind, &text); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		value, valueErr := models.NewTagValue(models.ValueKind(kind), text)
		if valueErr != nil {
			return nil, fmt.Errorf("%w: tag %q: %w", ErrScanningRows, key, valueErr)
		}
		tags[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}
