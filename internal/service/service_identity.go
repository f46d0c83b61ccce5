// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/PandorAura/PasswordVault/internal/config"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/utils"
	"github.com/PandorAura/PasswordVault/internal/validators"
	"github.com/PandorAura/PasswordVault/models"
)

// identityService verifies tokens minted by the external identity
// provider. The vault never issues tokens itself.
type identityService struct {
	// tokenSignKey is the HMAC secret shared with the identity provider.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim; empty accepts any issuer.
	tokenIssuer string

	validator validators.Validator

	logger *logger.Logger
}

func NewIdentityService(cfg config.App, logger *logger.Logger) IdentityService {
	return &identityService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		validator:    validators.NewVaultValidator(),
		logger:       logger,
	}
}

// ParseToken validates the signature, expiry and issuer of tokenString and
// returns the token with its owner identity.
//
// Returns ErrUnauthenticated for any invalid, expired or subject-less token,
// and for a subject that cannot be stored as an owner id.
func (i *identityService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, i.tokenSignKey, i.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if err := i.validator.Validate(ctx, validators.OwnerID(token.OwnerID), validators.FieldOwnerID); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token subject rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return token, nil
}
