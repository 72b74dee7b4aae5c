// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the ordered collection of user records. Every method is
// a linear operation over the stored sequence; implementations differ only
// in where the sequence lives.
type UserRepository interface {
	// List returns every record in stored order.
	List(ctx context.Context) ([]models.User, error)

	// GetByID returns the first record with the given id or [ErrUserNotFound].
	GetByID(ctx context.Context, id int64) (models.User, error)

	// Create assigns an id to user, appends it and returns the stored record.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update replaces name and email of the first record with the given id,
	// keeping its position. Returns [ErrUserNotFound] when no record matches.
	Update(ctx context.Context, id int64, user models.User) (models.User, error)

	// Delete removes every record with the given id. A miss is not an error.
	Delete(ctx context.Context, id int64) error
}

// IDGenerator hands out the id of the next record of the memory store.
// The SQL store assigns ids inside its insert transaction instead.
type IDGenerator interface {
	// NextID returns the id for a record appended to a collection that
	// currently holds currentLength records.
	NextID(currentLength int) int64
}
