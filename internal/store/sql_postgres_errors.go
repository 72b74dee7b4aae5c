// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or "" when err did not
// come from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// mapPostgresError translates the SQLSTATE codes the repository can act on.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func mapPostgresError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UndefinedTable:
		return fmt.Errorf("%w: %w", ErrStorageNotMigrated, err)
	default:
		return err
	}
}
