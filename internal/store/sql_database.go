// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-tag-sync/internal/logger"
	"github.com/MKhiriev/go-tag-sync/migrations"
)

type dialect int

const (
	dialectPostgres dialect = iota
	dialectSQLite
)

// DB is a database handle plus the dialect-specific helpers the
// repositories need.
type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations for the handle's dialect.
func (db *DB) Migrate() error {
	if db.dialect == dialectSQLite {
		return migrations.MigrateSQLite(db.DB)
	}
	return migrations.Migrate(db.DB)
}

// isRetryable reports whether err is a transient failure worth one retry.
func (db *DB) isRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
