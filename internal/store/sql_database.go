// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/migrations"
)

// DB wraps a *sql.DB together with everything that differs between the
// supported SQL dialects: the placeholder style of generated queries, the
// migration directory and the translation of driver errors.
type DB struct {
	*sql.DB

	dialect  string
	builder  sq.StatementBuilderType
	mapError func(error) error

	logger *logger.Logger
}

// Migrate applies the embedded goose migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// queryError wraps a failed statement with [ErrExecutingQuery] after the
// dialect had a chance to recognise it.
func (db *DB) queryError(err error) error {
	return fmt.Errorf("%w: %w", ErrExecutingQuery, db.mapError(err))
}
