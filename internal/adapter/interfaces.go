// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the user registry HTTP API.
//
// The primary abstraction is [UsersClient], which decouples callers from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPUsersClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

// UsersClient defines transport-agnostic access to the user registry.
// Implementations attach the bearer token to every users request and map
// transport-level errors to the sentinel values defined in this package.
type UsersClient interface {
	// List returns every stored user in stored order.
	List(ctx context.Context) ([]models.User, error)

	// Get returns the first user with id. Returns [ErrNotFound] (wrapped)
	// when there is none.
	Get(ctx context.Context, id int64) (models.User, error)

	// Create stores a new user and returns it with the id assigned by the
	// server.
	Create(ctx context.Context, payload models.UserPayload) (models.User, error)

	// Update replaces name and email of the user with id. A nil field is
	// sent as null and cleared on the server.
	Update(ctx context.Context, id int64, payload models.UserPayload) (models.User, error)

	// Delete removes every user with id. Deleting a missing id succeeds.
	Delete(ctx context.Context, id int64) error

	// Health reports the server status and build version. It does not
	// require a token.
	Health(ctx context.Context) (models.HealthResponse, error)
}
