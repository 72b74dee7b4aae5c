// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
)

const bearerPrefix = "Bearer "

// auth is an HTTP middleware that gates a route behind the static access
// token.
//
// The middleware rejects requests with HTTP 401 and {"message":"Unauthorized"}
// in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header does not start with "Bearer " ([ErrInvalidAuthorizationHeader]).
//   - The token part is empty ([ErrEmptyToken]).
//   - The token differs from the configured one ([ErrInvalidToken]).
//
// Rejections are logged at warn level. The presented token is never logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Msg("request rejected")
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Msg("request rejected")
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Msg("request rejected")
			writeError(w, r, err)
			return
		}

		if !h.tokenMatches(tokenString) {
			log.Warn().Err(ErrInvalidToken).Msg("request rejected")
			writeError(w, r, ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// tokenMatches compares token with the configured access token using the
// configured comparison mode.
func (h *Handler) tokenMatches(token string) bool {
	if h.tokenComparison == config.TokenComparisonConstant {
		return subtle.ConstantTimeCompare([]byte(token), []byte(h.accessToken)) == 1
	}

	return token == h.accessToken
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value. The token is the second space-separated field, so
//
//	Authorization: Bearer abc def
//
// yields "abc".
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts.
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
