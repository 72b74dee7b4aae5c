// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// withRecovery turns a panic anywhere downstream into a 500 response with
// {"message":"Something went wrong!"}. The panic value and stack are logged.
// When the handler already sent its headers only the log record is written.
// [http.ErrAbortHandler] is re-raised so the server can abort the response.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		if !ok {
			rw = &responseWriter{ResponseWriter: w}
		}

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Str("func", "withRecovery").
				Str("panic", fmt.Sprint(rvr)).
				Bytes("stack", debug.Stack()).
				Bool("headers_sent", rw.wroteHeader).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			writeMessage(rw, r, messageInternalError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(rw, r)
	})
}
