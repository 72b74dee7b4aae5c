// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_service_mock.go -package=mock

// UserService exposes the registry operations served by the /users routes.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)

	CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error)
	UpdateUser(ctx context.Context, id int64, payload models.UserPayload) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
