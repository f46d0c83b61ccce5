// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/PandorAura/PasswordVault/models"
)

// VaultService guards knowledge of the master password. It stores the
// client-derived salt and authentication hash and compares presented hashes
// against them. It never sees the master password itself.
type VaultService interface {
	// Setup stores the owner's vault metadata exactly once.
	Setup(ctx context.Context, ownerID, kdfSalt, authHash string) error
	// Params returns the stored salt and hash so a client can derive keys.
	Params(ctx context.Context, ownerID string) (models.VaultParams, error)
	// Verify compares providedHash with the stored hash in constant time.
	// A mismatch is (false, nil).
	Verify(ctx context.Context, ownerID, providedHash string) (bool, error)
}

// AccountService runs operations gated by master-password verification.
type AccountService interface {
	// DeleteAccount removes the owner, its vault metadata and every
	// credential once presentedHash verifies.
	DeleteAccount(ctx context.Context, ownerID, presentedHash string) error
}

// CredentialService manages owner-scoped credential entries. Entries that
// belong to another owner are reported exactly like missing ones.
type CredentialService interface {
	Create(ctx context.Context, ownerID string, input models.CredentialInput) (models.CredentialEntry, error)
	Get(ctx context.Context, id, ownerID string) (models.CredentialEntry, error)
	Update(ctx context.Context, id, ownerID string, input models.CredentialInput) (models.CredentialEntry, error)
	Delete(ctx context.Context, id, ownerID string) error
	List(ctx context.Context, ownerID string, query models.ListQuery) (models.Page[models.CredentialView], error)
}

// CredentialServiceWrapper defines middleware composition for
// CredentialService. Implementations wrap an existing CredentialService to
// add behavior such as validation.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

// BreachService proxies leaked-credential lookups to the breach provider.
type BreachService interface {
	// RangeQuery returns the raw k-anonymity body for a 5-character hash
	// prefix.
	RangeQuery(ctx context.Context, prefix string) ([]byte, error)
	// BreachedAccount returns the raw JSON breach list for account, or an
	// empty JSON array when the account has no known breaches.
	BreachedAccount(ctx context.Context, account string) ([]byte, error)
}

// IdentityService resolves bearer tokens issued by the identity provider.
type IdentityService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// HealthService reports whether the backing store is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
