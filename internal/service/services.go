// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/PandorAura/PasswordVault/internal/adapter"
	"github.com/PandorAura/PasswordVault/internal/config"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/store"
	"github.com/PandorAura/PasswordVault/internal/utils"
)

// Services aggregates every business service used by the transports.
type Services struct {
	VaultService      VaultService
	AccountService    AccountService
	CredentialService CredentialService
	BreachService     BreachService
	IdentityService   IdentityService
	HealthService     HealthService
	AppInfoService    AppInfoService
}

// NewServices wires the services over storages and the breach provider.
func NewServices(storages *store.Storages, provider adapter.BreachProvider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	vaultService := NewVaultService(storages.VaultRepository, logger)
	credentialService := NewCredentialValidationService().Wrap(
		NewCredentialService(storages.CredentialRepository, utils.NewUUIDGenerator(), time.Now, logger),
	)

	return &Services{
		VaultService:      vaultService,
		AccountService:    NewAccountService(vaultService, storages.OwnerRepository, logger),
		CredentialService: credentialService,
		BreachService:     NewBreachService(provider, logger),
		IdentityService:   NewIdentityService(cfg.App, logger),
		HealthService:     NewHealthService(storages.DB, logger),
		AppInfoService:    appInfoService,
	}, nil
}
