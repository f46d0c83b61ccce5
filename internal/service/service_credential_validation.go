// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/PandorAura/PasswordVault/internal/validators"
	"github.com/PandorAura/PasswordVault/models"
)

// CredentialValidationService rejects malformed input with ErrValidation
// before it reaches the wrapped CredentialService.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *CredentialValidationService) Create(ctx context.Context, ownerID string, input models.CredentialInput) (models.CredentialEntry, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.CredentialEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Create(ctx, ownerID, input)
}

func (v *CredentialValidationService) Get(ctx context.Context, id, ownerID string) (models.CredentialEntry, error) {
	return v.inner.Get(ctx, id, ownerID)
}

func (v *CredentialValidationService) Update(ctx context.Context, id, ownerID string, input models.CredentialInput) (models.CredentialEntry, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.CredentialEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Update(ctx, id, ownerID, input)
}

func (v *CredentialValidationService) Delete(ctx context.Context, id, ownerID string) error {
	return v.inner.Delete(ctx, id, ownerID)
}

// List checks paging bounds and the sort key. Transports fill in defaults
// for absent parameters; an explicit size of zero is rejected.
func (v *CredentialValidationService) List(ctx context.Context, ownerID string, query models.ListQuery) (models.Page[models.CredentialView], error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.Page[models.CredentialView]{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.List(ctx, ownerID, query)
}

func (v *CredentialValidationService) Wrap(wrapper CredentialService) CredentialService {
	v.inner = wrapper
	return v
}
