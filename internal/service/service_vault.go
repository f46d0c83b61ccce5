// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/store"
	"github.com/PandorAura/PasswordVault/internal/utils"
	"github.com/PandorAura/PasswordVault/internal/validators"
	"github.com/PandorAura/PasswordVault/models"
)

// vaultService is the concrete implementation of VaultService.
type vaultService struct {
	vaultRepository store.VaultRepository
	validator       validators.Validator

	now func() time.Time

	logger *logger.Logger
}

// NewVaultService constructs a VaultService over vaultRepository.
func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		validator:       validators.NewVaultValidator(),
		now:             time.Now,
		logger:          logger,
	}
}

// Setup stores the salt and authentication hash for ownerID.
//
// Returns:
//   - ErrUnauthenticated if ownerID is blank.
//   - ErrValidation if kdfSalt or authHash is blank, or ownerID is too long.
//   - ErrAlreadyConfigured if metadata already exists.
func (v *vaultService) Setup(ctx context.Context, ownerID, kdfSalt, authHash string) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("%w: no owner identity", ErrUnauthenticated)
	}

	meta := models.VaultMetadata{
		OwnerID:   ownerID,
		KDFSalt:   kdfSalt,
		AuthHash:  authHash,
		CreatedAt: v.now().UTC(),
	}
	if err := v.validator.Validate(ctx, meta, validators.FieldOwnerID, validators.FieldKDFSalt, validators.FieldAuthHash); err != nil {
		log.Debug().Err(err).Str("owner_id", ownerID).Msg("vault setup rejected")
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := v.vaultRepository.Create(ctx, meta); err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("vault setup failed")
		return mapStoreError(err)
	}

	log.Info().Str("owner_id", ownerID).Msg("vault configured")
	return nil
}

// Params returns the stored salt and hash. It requires no authentication.
func (v *vaultService) Params(ctx context.Context, ownerID string) (models.VaultParams, error) {
	if err := v.validator.Validate(ctx, validators.OwnerID(ownerID), validators.FieldOwnerID); err != nil {
		return models.VaultParams{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	meta, err := v.vaultRepository.Get(ctx, ownerID)
	if err != nil {
		return models.VaultParams{}, mapStoreError(err)
	}

	return meta.Params(), nil
}

func (v *vaultService) Verify(ctx context.Context, ownerID, providedHash string) (bool, error) {
	if strings.TrimSpace(ownerID) == "" {
		return false, fmt.Errorf("%w: no owner identity", ErrUnauthenticated)
	}
	if strings.TrimSpace(providedHash) == "" {
		return false, fmt.Errorf("%w: %w", ErrValidation, validators.ErrBlankAuthHash)
	}

	meta, err := v.vaultRepository.Get(ctx, ownerID)
	if err != nil {
		return false, mapStoreError(err)
	}

	valid := utils.ConstantTimeEqual(meta.AuthHash, providedHash)
	if !valid {
		logger.FromContext(ctx).Warn().Str("owner_id", ownerID).Msg("master password verification failed")
	}

	return valid, nil
}
