// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PandorAura/PasswordVault/internal/adapter"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/validators"
)

// emptyBreachList is returned when the provider knows no breach for an
// account.
var emptyBreachList = []byte("[]")

type breachService struct {
	provider  adapter.BreachProvider
	validator validators.Validator

	logger *logger.Logger
}

func NewBreachService(provider adapter.BreachProvider, logger *logger.Logger) BreachService {
	return &breachService{
		provider:  provider,
		validator: validators.NewVaultValidator(),
		logger:    logger,
	}
}

// RangeQuery normalises prefix (trim, upper-case) and forwards it. Only the
// 5-character prefix ever leaves the process. An invalid prefix makes no
// outbound call.
func (b *breachService) RangeQuery(ctx context.Context, prefix string) ([]byte, error) {
	normalized := strings.ToUpper(strings.TrimSpace(prefix))
	if err := b.validator.Validate(ctx, validators.RangePrefix(normalized)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	body, err := b.provider.Range(ctx, normalized)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return body, nil
}

// BreachedAccount looks up account (trimmed). An upstream 404 means "no
// known breaches" and yields an empty JSON array.
func (b *breachService) BreachedAccount(ctx context.Context, account string) ([]byte, error) {
	trimmed := strings.TrimSpace(account)
	if err := b.validator.Validate(ctx, validators.Account(trimmed)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	body, err := b.provider.BreachedAccount(ctx, trimmed)
	if errors.Is(err, adapter.ErrNotFound) {
		return emptyBreachList, nil
	}
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return body, nil
}
