// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It runs against the "users" table of either PostgreSQL or SQLite; the
// dialect specifics live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db       *DB
	strategy string

	logger *logger.Logger
}

// NewUserRepository constructs a SQL [UserRepository] assigning ids with
// strategy. An empty strategy means the length strategy.
//
// Sequence ids are drawn from the user_id_counter table inside the insert
// transaction, so instances sharing one database never hand out the same id.
func NewUserRepository(db *DB, strategy string, logger *logger.Logger) (UserRepository, error) {
	logger.Debug().Str("id_strategy", strategy).Msg("creating user repository")

	switch strategy {
	case config.IDStrategyLength, "":
		strategy = config.IDStrategyLength
	case config.IDStrategySequence:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIDStrategy, strategy)
	}

	return &userRepository{
		db:       db,
		strategy: strategy,
		logger:   logger,
	}, nil
}

// List returns every row ordered by insertion.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("failed to execute query for listing users")
		return nil, r.db.queryError(err)
	}
	defer rows.Close()

	users := make([]models.User, 0, seedUsersCount)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.List").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// GetByID returns the earliest inserted row carrying id.
func (r *userRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(r.db.builder, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.GetByID").Int64("user_id", id).Msg("failed to get user")
		return models.User{}, r.db.queryError(err)
	}

	return user, nil
}

// Create assigns an id and inserts the row in one transaction.
//
// The length strategy counts the rows first. Under READ COMMITTED two
// concurrent creates may read the same count and store the same id, which
// that strategy allows anyway. The sequence strategy bumps the shared
// counter row, whose lock serialises concurrent creates.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	created := models.User{Name: user.Name, Email: user.Email}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		id, err := r.nextID(ctx, tx)
		if err != nil {
			return err
		}
		created.ID = id

		insertQuery, insertArgs, err := buildInsertUserQuery(r.db.builder, created)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return r.db.queryError(err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("failed to create user")
		return models.User{}, err
	}

	return created, nil
}

// Update locates the first row with id and rewrites its name and email.
func (r *userRepository) Update(ctx context.Context, id int64, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	updated := models.User{ID: id, Name: user.Name, Email: user.Email}
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		rowQuery, rowArgs, err := buildFirstRowIDQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var rowID int64
		err = tx.QueryRowContext(ctx, rowQuery, rowArgs...).Scan(&rowID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrUserNotFound
		case err != nil:
			return r.db.queryError(err)
		}

		updateQuery, updateArgs, err := buildUpdateUserQuery(r.db.builder, rowID, updated)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
			return r.db.queryError(err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.Update").Int64("user_id", id).Msg("failed to update user")
		}
		return models.User{}, err
	}

	return updated, nil
}

// Delete removes every row with id.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUsersQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Int64("user_id", id).Msg("failed to delete users")
		return r.db.queryError(err)
	}

	if removed, err := res.RowsAffected(); err == nil {
		log.Debug().Str("func", "*userRepository.Delete").Int64("user_id", id).Int64("removed", removed).Msg("users deleted")
	}

	return nil
}

func (r *userRepository) nextID(ctx context.Context, tx *sql.Tx) (int64, error) {
	if r.strategy == config.IDStrategySequence {
		query, args, err := buildNextSequenceIDQuery(r.db.builder)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, r.db.queryError(err)
		}
		return id, nil
	}

	countQuery, countArgs, err := buildCountUsersQuery(r.db.builder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return 0, r.db.queryError(err)
	}

	id := lengthIDGenerator{}.NextID(count)

	// keep the counter ahead of every stored id, so switching this database
	// to the sequence strategy later never reuses one
	raiseQuery, raiseArgs, err := buildRaiseCounterQuery(r.db.builder, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, raiseQuery, raiseArgs...); err != nil {
		return 0, r.db.queryError(err)
	}

	return id, nil
}

func (r *userRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user  models.User
		name  sql.NullString
		email sql.NullString
	)

	if err := row.Scan(&user.ID, &name, &email); err != nil {
		return models.User{}, err
	}

	user.Name = nullStringPtr(name)
	user.Email = nullStringPtr(email)

	return user, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
