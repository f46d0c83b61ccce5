// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/PandorAura/PasswordVault/internal/store"
)

// Kind classifies every error a service can return. Each Kind is itself an
// error so details can be attached by wrapping:
//
//	fmt.Errorf("%w: title must not be blank", ErrValidation)
type Kind string

func (k Kind) Error() string {
	return string(k)
}

// Retryable reports whether repeating the same call may succeed. The
// services themselves never retry.
func (k Kind) Retryable() bool {
	return k == ErrUpstream || k == ErrUnavailable
}

const (
	ErrValidation        Kind = "validation failed"
	ErrUnauthenticated   Kind = "unauthenticated"
	ErrForbidden         Kind = "forbidden"
	ErrNotFound          Kind = "not found"
	ErrAlreadyConfigured Kind = "vault already configured"
	ErrNotConfigured     Kind = "vault not configured"
	ErrUpstream          Kind = "upstream failure"
	ErrUnavailable       Kind = "storage temporarily unavailable"
	ErrInternal          Kind = "internal error"
)

var kinds = []Kind{
	ErrValidation,
	ErrUnauthenticated,
	ErrForbidden,
	ErrNotFound,
	ErrAlreadyConfigured,
	ErrNotConfigured,
	ErrUpstream,
	ErrUnavailable,
	ErrInternal,
}

// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when no
// application version is configured.
var ErrVersionIsNotSpecified = errors.New("application version is not specified")

// KindOf returns the Kind carried by err, ErrInternal for an unclassified
// error, and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternal
}

// mapStoreError translates repository errors into a Kind, keeping the
// original error in the chain.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrVaultNotFound):
		return fmt.Errorf("%w: %w", ErrNotConfigured, err)
	case errors.Is(err, store.ErrVaultAlreadyExists):
		return fmt.Errorf("%w: %w", ErrAlreadyConfigured, err)
	case errors.Is(err, store.ErrCredentialNotFound), errors.Is(err, store.ErrOwnerNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrTransient):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

// mapAdapterError wraps any breach provider failure as ErrUpstream. The
// message keeps the provider detail ("HTTP 503", dial errors). Callers
// handle adapter.ErrNotFound first where it has a local meaning.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}
