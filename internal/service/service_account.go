// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/store"
)

type accountService struct {
	vault           VaultService
	ownerRepository store.OwnerRepository

	logger *logger.Logger
}

// NewAccountService returns an AccountService whose operations are gated by
// vault.Verify.
func NewAccountService(vault VaultService, ownerRepository store.OwnerRepository, logger *logger.Logger) AccountService {
	return &accountService{
		vault:           vault,
		ownerRepository: ownerRepository,
		logger:          logger,
	}
}

// DeleteAccount verifies presentedHash and then removes every record of
// ownerID in one transaction. On ErrForbidden nothing is modified.
//
// Without vault metadata there is nothing to verify against: an owner the
// store has never seen gets ErrNotFound, a known owner gets ErrNotConfigured.
func (a *accountService) DeleteAccount(ctx context.Context, ownerID, presentedHash string) error {
	log := logger.FromContext(ctx)

	valid, err := a.vault.Verify(ctx, ownerID, presentedHash)
	if err != nil {
		if KindOf(err) == ErrNotConfigured {
			return a.unconfiguredOwner(ctx, ownerID, err)
		}
		return err
	}
	if !valid {
		return fmt.Errorf("%w: master password verification failed", ErrForbidden)
	}

	if err = a.ownerRepository.Delete(ctx, ownerID); err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("account deletion failed")
		return mapStoreError(err)
	}

	log.Info().Str("owner_id", ownerID).Msg("account deleted")
	return nil
}

func (a *accountService) unconfiguredOwner(ctx context.Context, ownerID string, notConfigured error) error {
	exists, err := a.ownerRepository.Exists(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Msg("owner lookup failed")
		return mapStoreError(err)
	}
	if !exists {
		return fmt.Errorf("%w: no account for owner", ErrNotFound)
	}
	return notConfigured
}
