// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme or carries no token part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidToken is returned when the token does not match the
	// configured access token.
	ErrInvalidToken = errors.New("invalid access token")
)

var (
	// ErrInvalidUserID is returned when the :id path segment does not start
	// with an integer. Such ids never match a record.
	ErrInvalidUserID = errors.New("user id is not a number")

	// ErrMalformedBody is returned when a JSON request body cannot be parsed.
	ErrMalformedBody = errors.New("malformed JSON body")
)

// Response messages. They are part of the public contract of the API.
const (
	messageUnauthorized  = "Unauthorized"
	messageUserNotFound  = "User not found"
	messageRouteNotFound = "Not Found"
	messageInternalError = "Something went wrong!"
)
