// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/handler"
	myHTTP "github.com/MKhiriev/go-user-registry/internal/handler/http"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers() *handler.Handlers {
	cfg := config.StructuredConfig{Auth: config.Auth{AccessToken: "secret"}}
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, cfg, logger.Nop()),
	}
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		wantErr  error
	}{
		{name: "nil handlers", handlers: nil, wantErr: errNoServersAreCreated},
		{name: "no HTTP handler", handlers: &handler.Handlers{}, wantErr: errNoServersAreCreated},
		{name: "HTTP handler", handlers: testHandlers()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, config.Server{Port: 3001}, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, srv)
		})
	}
}

func TestNewServer_UsesConfiguredAddress(t *testing.T) {
	srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:4040"}, logger.Nop())
	require.NoError(t, err)

	s, ok := srv.(*server)
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1:4040", s.httpServer.server.Addr)
	assert.NotNil(t, s.httpServer.server.Handler)
}

func TestNewHTTPServer_ServesHandler(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	hs := newHTTPServer(h, config.Server{Port: 3001}, logger.Nop())

	assert.Equal(t, ":3001", hs.server.Addr)

	rr := httptest.NewRecorder()
	hs.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	err := s.run(context.Background())

	require.ErrorIs(t, err, errNoServersToRun)
}

func TestRun_StopsWhenContextIsCancelled(t *testing.T) {
	srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestShutdown_BeforeRunIsSafe(t *testing.T) {
	srv, err := NewServer(testHandlers(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, srv.Shutdown)
}
