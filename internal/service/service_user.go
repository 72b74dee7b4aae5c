// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.List(ctx)
}

func (u *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return u.userRepository.GetByID(ctx, id)
}

// CreateUser stores the payload as-is. Absent fields stay absent; the id is
// chosen by the repository.
func (u *userService) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	return u.userRepository.Create(ctx, models.User{Name: payload.Name, Email: payload.Email})
}

// UpdateUser replaces both fields of the record, so a field missing from the
// payload becomes null. The id is never taken from the payload.
func (u *userService) UpdateUser(ctx context.Context, id int64, payload models.UserPayload) (models.User, error) {
	return u.userRepository.Update(ctx, id, models.User{ID: id, Name: payload.Name, Email: payload.Email})
}

func (u *userService) DeleteUser(ctx context.Context, id int64) error {
	return u.userRepository.Delete(ctx, id)
}
