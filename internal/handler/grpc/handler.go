// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// VaultServiceName is the service name reported next to the overall ("")
// status by the health service.
const VaultServiceName = "passwordvault.Vault"

// defaultProbeInterval is how often the store is pinged to refresh the
// serving status.
const defaultProbeInterval = 5 * time.Second

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service whose status follows
// [service.HealthService]: SERVING while the store answers pings and
// NOT_SERVING otherwise.
type Handler struct {
	services *service.Services
	health   *health.Server

	probeInterval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The initial status is NOT_SERVING until
// the first probe succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services:      services,
		health:        health.NewServer(),
		probeInterval: defaultProbeInterval,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Watch probes the store immediately and then every probe interval until ctx
// is done.
func (h *Handler) Watch(ctx context.Context) {
	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	for {
		h.Probe(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Probe runs one health check and publishes its outcome.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("gRPC health probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(VaultServiceName, status)
}
