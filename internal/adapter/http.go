// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/go-resty/resty/v2"
)

const (
	usersPath  = "/users"
	userPath   = "/users/{id}"
	healthPath = "/health"
)

type httpUsersClient struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPUsersClient constructs an HTTP/REST implementation of
// [UsersClient]. address may omit the scheme, "http://" is assumed. token is
// sent as "Authorization: Bearer <token>" on every users request.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPUsersClient(address, token string, timeout time.Duration, logger *logger.Logger) (UsersClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid users api address: %w", err)
	}

	c := &httpUsersClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		token:  strings.TrimSpace(token),
		logger: logger,
	}
	c.client.OnAfterResponse(c.logResponse)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [UsersClient] via GET /users.
func (h *httpUsersClient) List(ctx context.Context) ([]models.User, error) {
	resp, err := h.authedRequest(ctx).Get(usersPath)
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode list users response: %w", err)
	}

	return users, nil
}

// Get implements [UsersClient] via GET /users/{id}.
func (h *httpUsersClient) Get(ctx context.Context, id int64) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get(userPath)
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}

	return decodeUser(resp, "get user")
}

// Create implements [UsersClient] via POST /users.
func (h *httpUsersClient) Create(ctx context.Context, payload models.UserPayload) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(usersPath)
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}

	return decodeUser(resp, "create user")
}

// Update implements [UsersClient] via PUT /users/{id}.
func (h *httpUsersClient) Update(ctx context.Context, id int64, payload models.UserPayload) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put(userPath)
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}

	return decodeUser(resp, "update user")
}

// Delete implements [UsersClient] via DELETE /users/{id}.
func (h *httpUsersClient) Delete(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(userPath)
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [UsersClient] via GET /health.
func (h *httpUsersClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpUsersClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

func (h *httpUsersClient) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("users api response")
	return nil
}

func decodeUser(resp *resty.Response, op string) (models.User, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode %s response: %w", op, err)
	}

	return user, nil
}
