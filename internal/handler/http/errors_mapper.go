// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/store"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInvalidToken:               http.StatusUnauthorized,

	ErrInvalidUserID:      http.StatusNotFound,
	store.ErrUserNotFound: http.StatusNotFound,

	ErrMalformedBody: http.StatusInternalServerError,

	store.ErrStorageNotMigrated:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var statusMessageMap = map[int]string{
	http.StatusUnauthorized:        messageUnauthorized,
	http.StatusNotFound:            messageUserNotFound,
	http.StatusInternalServerError: messageInternalError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromStatus(status int) string {
	if msg, ok := statusMessageMap[status]; ok {
		return msg
	}
	return messageInternalError
}
