// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/PandorAura/PasswordVault/internal/config"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/service"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

// Handler serves the vault REST API on top of [service.Services].
type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	cacheMaxAge    int

	logger *logger.Logger
}

// NewHandler returns a Handler bound to services. Request timeout and the
// breach range cache lifetime come from cfg.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		cacheMaxAge:    cfg.Breach.CacheMaxAge,
		logger:         logger,
	}
}
