// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
)

type Handler struct {
	services *service.Services

	accessToken     string
	tokenComparison string

	requestTimeout     time.Duration
	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		accessToken:        cfg.Auth.AccessToken,
		tokenComparison:    cfg.App.TokenComparison,
		requestTimeout:     cfg.Server.RequestTimeout,
		corsAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		logger:             logger,
	}
}
