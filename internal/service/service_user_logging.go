// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/rs/zerolog"
)

// UserLoggingService records every call to the wrapped UserService with its
// duration. A missing user is an expected outcome and is logged at debug
// level; any other error at error level.
type UserLoggingService struct {
	inner UserService
}

func NewUserLoggingService() UserServiceWrapper {
	return &UserLoggingService{}
}

func (s *UserLoggingService) Wrap(inner UserService) UserService {
	s.inner = inner
	return s
}

func (s *UserLoggingService) ListUsers(ctx context.Context) ([]models.User, error) {
	start := time.Now()
	users, err := s.inner.ListUsers(ctx)
	s.log(ctx, "ListUsers", start, err).Int("count", len(users)).Send()
	return users, err
}

func (s *UserLoggingService) GetUser(ctx context.Context, id int64) (models.User, error) {
	start := time.Now()
	user, err := s.inner.GetUser(ctx, id)
	s.log(ctx, "GetUser", start, err).Int64("user_id", id).Send()
	return user, err
}

func (s *UserLoggingService) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	start := time.Now()
	user, err := s.inner.CreateUser(ctx, payload)
	s.log(ctx, "CreateUser", start, err).Int64("user_id", user.ID).Send()
	return user, err
}

func (s *UserLoggingService) UpdateUser(ctx context.Context, id int64, payload models.UserPayload) (models.User, error) {
	start := time.Now()
	user, err := s.inner.UpdateUser(ctx, id, payload)
	s.log(ctx, "UpdateUser", start, err).Int64("user_id", id).Send()
	return user, err
}

func (s *UserLoggingService) DeleteUser(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.inner.DeleteUser(ctx, id)
	s.log(ctx, "DeleteUser", start, err).Int64("user_id", id).Send()
	return err
}

func (s *UserLoggingService) log(ctx context.Context, method string, start time.Time, err error) *zerolog.Event {
	log := logger.FromContext(ctx)

	var event *zerolog.Event
	switch {
	case err == nil:
		event = log.Debug()
	case errors.Is(err, store.ErrUserNotFound):
		event = log.Debug().Err(err)
	default:
		event = log.Error().Err(err)
	}

	return event.
		Str("func", "UserService."+method).
		Dur("duration", time.Since(start))
}
