// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no record carries the requested id.
	ErrUserNotFound = errors.New("user not found")

	// ErrStorageNotMigrated is returned when the users table is missing,
	// i.e. the migrations were never applied to the database.
	ErrStorageNotMigrated = errors.New("users table does not exist")

	// ErrUnknownDriver is returned by [NewStorages] for a driver name it
	// cannot open.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrUnknownIDStrategy is returned by [NewIDGenerator] and
	// [NewUserRepository] for an unsupported strategy name.
	ErrUnknownIDStrategy = errors.New("unknown id strategy")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan user rows")
)
