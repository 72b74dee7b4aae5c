// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckJSONBody_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "empty", body: ""},
		{name: "whitespace", body: " \n\t"},
		{name: "object", body: `{"name":"X"}`},
		{name: "array", body: `[1,2,3]`},
		{name: "padded object", body: "  {}  "},
		{name: "truncated object", body: `{"name":`, wantErr: true},
		{name: "trailing garbage", body: `{} x`, wantErr: true},
		{name: "bare string", body: `"X"`, wantErr: true},
		{name: "bare number", body: `42`, wantErr: true},
		{name: "null", body: `null`, wantErr: true},
		{name: "not JSON", body: `name=X`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkJSONBody([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedBody)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsJSONRequest(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"Application/JSON", true},
		{"text/plain", false},
		{"application/x-www-form-urlencoded", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Header.Set("Content-Type", tt.contentType)

			assert.Equal(t, tt.want, isJSONRequest(req))
		})
	}
}

func TestDecodeUserPayload(t *testing.T) {
	newReq := func(body, contentType string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
		return req
	}

	t.Run("both fields", func(t *testing.T) {
		p, err := decodeUserPayload(newReq(`{"name":"X","email":"x@x.com","id":9}`, "application/json"))
		require.NoError(t, err)
		require.NotNil(t, p.Name)
		require.NotNil(t, p.Email)
		assert.Equal(t, "X", *p.Name)
		assert.Equal(t, "x@x.com", *p.Email)
	})

	t.Run("null field stays absent", func(t *testing.T) {
		p, err := decodeUserPayload(newReq(`{"name":null,"email":"x@x.com"}`, "application/json"))
		require.NoError(t, err)
		assert.Nil(t, p.Name)
		assert.NotNil(t, p.Email)
	})

	t.Run("array yields empty payload", func(t *testing.T) {
		p, err := decodeUserPayload(newReq(`[{"name":"X"}]`, "application/json"))
		require.NoError(t, err)
		assert.Nil(t, p.Name)
	})

	t.Run("other content type is ignored", func(t *testing.T) {
		p, err := decodeUserPayload(newReq(`{"name":"X"}`, "text/plain"))
		require.NoError(t, err)
		assert.Nil(t, p.Name)
	})

	t.Run("wrong field type", func(t *testing.T) {
		_, err := decodeUserPayload(newReq(`{"email":["a"]}`, "application/json"))
		assert.ErrorIs(t, err, ErrMalformedBody)
	})
}

func TestWithJSONBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantStatus  int
		wantNext    bool
	}{
		{"valid JSON passes", `{"name":"X"}`, "application/json", http.StatusOK, true},
		{"malformed JSON rejected", `{"name":`, "application/json", http.StatusInternalServerError, false},
		{"malformed body of other type passes", `{"name":`, "text/plain", http.StatusOK, true},
		{"empty JSON body passes", ``, "application/json", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				p, err := decodeUserPayload(r)
				require.NoError(t, err)
				if tt.body == `{"name":"X"}` {
					require.NotNil(t, p.Name, "body must still be readable downstream")
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			req = injectNopLogger(req)

			rr := httptest.NewRecorder()
			newTestHandler().withJSONBody(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.JSONEq(t, `{"message":"Something went wrong!"}`, rr.Body.String())
			}
		})
	}
}

func TestDecodeUserPayload_KeysMatchExactly(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"NAME":"X","Email":"y"}`))
	req.Header.Set("Content-Type", "application/json")

	p, err := decodeUserPayload(req)

	require.NoError(t, err)
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Email)
}

func TestDecodeUserPayload_LastDuplicateKeyWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"A","name":"B"}`))
	req.Header.Set("Content-Type", "application/json")

	p, err := decodeUserPayload(req)

	require.NoError(t, err)
	require.NotNil(t, p.Name)
	assert.Equal(t, "B", *p.Name)
}

func TestRoutes_CreateUser_MiscasedKeysAreIgnored(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rr := do(t, router, request{method: http.MethodPost, path: "/users", body: `{"NAME":"X","Email":"y"}`, token: testToken})

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":4,"name":null,"email":null}`, rr.Body.String())
}

// userBodyOfSize returns {"name":"aaa…","email":"x"} exactly size bytes long.
func userBodyOfSize(size int) string {
	const prefix, suffix = `{"name":"`, `","email":"x"}`
	return prefix + strings.Repeat("a", size-len(prefix)-len(suffix)) + suffix
}

func TestRoutes_BodyLimit(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		token       string
		wantStatus  int
	}{
		{
			name:        "at the limit",
			body:        userBodyOfSize(maxBodyBytes),
			contentType: "application/json",
			token:       testToken,
			wantStatus:  http.StatusCreated,
		},
		{
			name:        "one byte over",
			body:        userBodyOfSize(maxBodyBytes + 1),
			contentType: "application/json",
			token:       testToken,
			wantStatus:  http.StatusInternalServerError,
		},
		{
			name:        "far over",
			body:        userBodyOfSize(200 << 10),
			contentType: "application/json",
			token:       testToken,
			wantStatus:  http.StatusInternalServerError,
		},
		{
			name:        "valid prefix within the limit",
			body:        `{}` + strings.Repeat(" ", 200<<10),
			contentType: "application/json",
			token:       testToken,
			wantStatus:  http.StatusInternalServerError,
		},
		{
			name:        "rejected before authorization",
			body:        userBodyOfSize(200 << 10),
			contentType: "application/json",
			wantStatus:  http.StatusInternalServerError,
		},
		{
			name:        "body of other type is not parsed",
			body:        strings.Repeat("a", 200<<10),
			contentType: "text/plain",
			token:       testToken,
			wantStatus:  http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, testConfig())

			rr := do(t, router, request{
				method: http.MethodPost,
				path:   "/users",
				body:   tt.body,
				token:  tt.token,
				header: http.Header{"Content-Type": {tt.contentType}},
			})

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "Something went wrong!", decodeMessage(t, rr))

				list := do(t, router, request{method: http.MethodGet, path: "/users", token: testToken})
				assert.Equal(t, []int64{1, 2, 3}, userIDs(decodeUsers(t, list)))
			}
		})
	}
}

func TestWithBodyLimit_ErrorIsReplayedAfterLogging(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(userBodyOfSize(maxBodyBytes+10)))
	req.Header.Set("Content-Type", "application/json")
	req = injectNopLogger(req)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	h := newTestHandler()
	rr := httptest.NewRecorder()
	h.withBodyLimit(h.withLogging(h.withJSONBody(next))).ServeHTTP(rr, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestReadAndRestoreBody_ReplaysReadError(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789"))
	req.Body = http.MaxBytesReader(rr, req.Body, 4)

	body, err := readAndRestoreBody(req)
	var maxErr *http.MaxBytesError
	require.ErrorAs(t, err, &maxErr)
	assert.Equal(t, "0123", string(body))

	again, err := readAndRestoreBody(req)
	require.ErrorAs(t, err, &maxErr)
	assert.Equal(t, "0123", string(again))
}
