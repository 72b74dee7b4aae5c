// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-registry/models"
)

// Every record carries an internal, strictly increasing row_id. Ordering by
// it gives insertion order and lets "first record with id" stay well
// defined when ids collide.
const (
	usersTable  = "users"
	rowIDColumn = "row_id"
	idColumn    = "id"
	nameColumn  = "name"
	emailColumn = "email"

	// user_id_counter holds a single row with the greatest id handed out so
	// far. Every instance sharing the database draws sequence ids from it.
	idCounterTable = "user_id_counter"
	lastIDColumn   = "last_id"
)

var userColumns = []string{idColumn, nameColumn, emailColumn}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy(rowIDColumn).
		ToSql()
}

func buildGetUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{idColumn: id}).
		OrderBy(rowIDColumn).
		Limit(1).
		ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(usersTable).
		ToSql()
}

// buildNextSequenceIDQuery bumps the counter and returns the new value. The
// row lock taken by the UPDATE serialises concurrent creates.
func buildNextSequenceIDQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Update(idCounterTable).
		Set(lastIDColumn, sq.Expr(lastIDColumn+" + 1")).
		Suffix("RETURNING " + lastIDColumn).
		ToSql()
}

// buildRaiseCounterQuery moves the counter up to id when id is greater.
func buildRaiseCounterQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Update(idCounterTable).
		Set(lastIDColumn, id).
		Where(sq.Lt{lastIDColumn: id}).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email).
		ToSql()
}

func buildFirstRowIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(rowIDColumn).
		From(usersTable).
		Where(sq.Eq{idColumn: id}).
		OrderBy(rowIDColumn).
		Limit(1).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, rowID int64, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set(nameColumn, user.Name).
		Set(emailColumn, user.Email).
		Where(sq.Eq{rowIDColumn: rowID}).
		ToSql()
}

func buildDeleteUsersQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{idColumn: id}).
		ToSql()
}
