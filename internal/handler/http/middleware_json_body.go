// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-user-registry/models"
)

const (
	contentTypeJSON = "application/json"

	// maxBodyBytes caps every request body at 100kb.
	maxBodyBytes = 100 << 10

	payloadFieldName  = "name"
	payloadFieldEmail = "email"
)

// withBodyLimit caps the request body at maxBodyBytes. It runs ahead of the
// logger so nothing downstream buffers more than the cap. A JSON body over
// the cap is rejected by withJSONBody.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// withJSONBody rejects a request declared as JSON whose body is not a JSON
// object or array. The rejection is a 500 with {"message":"Something went
// wrong!"} and happens before authorization, on every route.
// Bodies of other content types are ignored.
func (h *Handler) withJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isJSONRequest(r) {
			next.ServeHTTP(w, r)
			return
		}

		body, err := readAndRestoreBody(r)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedBody, err))
			return
		}

		if err := checkJSONBody(body); err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// checkJSONBody accepts an empty body, a JSON object or a JSON array.
func checkJSONBody(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] != '{' && trimmed[0] != '[' {
		return fmt.Errorf("%w: top-level value must be an object or an array", ErrMalformedBody)
	}
	if !json.Valid(trimmed) {
		return fmt.Errorf("%w: invalid JSON", ErrMalformedBody)
	}

	return nil
}

// decodeUserPayload reads name and email from a JSON object body. Keys match
// exactly, so "Name" or "EMAIL" are not picked up. A request that is not
// JSON, has an empty body or carries an array yields a payload with both
// fields absent.
func decodeUserPayload(r *http.Request) (models.UserPayload, error) {
	var payload models.UserPayload
	if !isJSONRequest(r) || r.Body == nil {
		return payload, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return payload, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return payload, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return models.UserPayload{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	if err := decodeField(fields, payloadFieldName, &payload.Name); err != nil {
		return models.UserPayload{}, err
	}
	if err := decodeField(fields, payloadFieldEmail, &payload.Email); err != nil {
		return models.UserPayload{}, err
	}

	return payload, nil
}

// decodeField leaves dst nil when key is missing or null.
func decodeField(fields map[string]json.RawMessage, key string, dst **string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: field %q: %w", ErrMalformedBody, key, err)
	}

	return nil
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == contentTypeJSON
}
