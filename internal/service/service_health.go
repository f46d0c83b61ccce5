// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/PandorAura/PasswordVault/internal/logger"
)

// Pinger is satisfied by *sql.DB and therefore by *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	db Pinger

	logger *logger.Logger
}

func NewHealthService(db Pinger, logger *logger.Logger) HealthService {
	return &healthService{db: db, logger: logger}
}

// Check returns ErrUnavailable when the database does not answer a ping.
func (h *healthService) Check(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("health check failed")
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}
