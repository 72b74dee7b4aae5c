// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// withLogging emits two records per request. The first is written before
// any downstream stage runs and describes the request: method, path, full
// header mapping, parsed query and body. The body is buffered and restored,
// so downstream stages read it unchanged. The second record is written when
// the response is complete and carries status, duration and size.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		body, err := readAndRestoreBody(r)
		if err != nil {
			log.Err(err).Str("func", "withLogging").Msg("error reading request body")
		}

		event := log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Interface("headers", r.Header).
			Interface("query", r.URL.Query())
		switch {
		case err != nil, len(body) == 0:
		case json.Valid(body):
			event = event.RawJSON("body", body)
		default:
			event = event.Str("body", string(body))
		}
		event.Msg("incoming request")

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request completed")
	})
}

// readAndRestoreBody returns the request body and replaces r.Body with a
// reader over the same bytes. A read error is replayed to the next reader
// after those bytes, so a body over the size cap stays rejected downstream.
func readAndRestoreBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	_ = r.Body.Close()

	var restored io.Reader = bytes.NewReader(body)
	if err != nil {
		restored = io.MultiReader(restored, errReader{err: err})
	}
	r.Body = io.NopCloser(restored)

	return body, err
}

type errReader struct {
	err error
}

func (e errReader) Read([]byte) (int, error) {
	return 0, e.err
}
