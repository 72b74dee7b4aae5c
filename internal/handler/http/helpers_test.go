// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// newTestHandler creates a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{
		logger:          logger.Nop(),
		accessToken:     testToken,
		tokenComparison: config.TokenComparisonPlain,
	}
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:  config.App{IDStrategy: config.IDStrategyLength, TokenComparison: config.TokenComparisonPlain},
		Auth: config.Auth{AccessToken: testToken},
	}
}

// newTestRouter wires the real router over a freshly seeded memory store.
func newTestRouter(t *testing.T, cfg config.StructuredConfig) http.Handler {
	t.Helper()

	ids, err := store.NewIDGenerator(cfg.App.IDStrategy, 3)
	require.NoError(t, err)

	repo := store.NewMemoryUserRepository(store.SeedUsers(), ids, logger.Nop())
	services, err := service.NewServices(&store.Storages{UserRepository: repo}, models.NewAppBuildInfo("test-version", "", ""), logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg, logger.Nop()).Init()
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

type request struct {
	method string
	path   string
	body   string
	token  string
	header http.Header
}

func do(t *testing.T, router http.Handler, req request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	}

	r := httptest.NewRequest(req.method, req.path, body)
	if req.body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		r.Header.Set("Authorization", "Bearer "+req.token)
	}
	for k, v := range req.header {
		r.Header[k] = v
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, r)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg), "body: %s", rr.Body.String())
	return msg.Message
}

func decodeUser(t *testing.T, rr *httptest.ResponseRecorder) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user), "body: %s", rr.Body.String())
	return user
}

func decodeUsers(t *testing.T, rr *httptest.ResponseRecorder) []models.User {
	t.Helper()
	var users []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users), "body: %s", rr.Body.String())
	return users
}

func userIDs(users []models.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
