// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/PandorAura/PasswordVault/models"
)

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// OwnerRepository manages the local owner records.
type OwnerRepository interface {
	// Exists reports whether an owner row is present.
	Exists(ctx context.Context, ownerID string) (bool, error)
	// Delete removes the owner together with its vault metadata and every
	// credential in one transaction. Returns [ErrOwnerNotFound] if no owner
	// row matched.
	Delete(ctx context.Context, ownerID string) error
}

// VaultRepository persists per-owner vault metadata.
type VaultRepository interface {
	// Create ensures the owner row exists and inserts metadata in one
	// transaction. Returns [ErrVaultAlreadyExists] on a duplicate owner.
	Create(ctx context.Context, meta models.VaultMetadata) error
	// Get returns [ErrVaultNotFound] when the owner has no metadata.
	Get(ctx context.Context, ownerID string) (models.VaultMetadata, error)
}

// CredentialRepository persists credential entries.
type CredentialRepository interface {
	// Create ensures the owner row exists and inserts the entry.
	Create(ctx context.Context, entry models.CredentialEntry) error
	// Get loads an entry by id regardless of owner so callers can tell a
	// foreign entry from a missing one.
	Get(ctx context.Context, id string) (models.CredentialEntry, error)
	// Update replaces the mutable fields of the entry matching both
	// entry.ID and entry.OwnerID.
	Update(ctx context.Context, entry models.CredentialEntry) error
	// Delete removes the entry matching both id and ownerID.
	Delete(ctx context.Context, id, ownerID string) error
	// List returns one page of the owner's entries and the total number of
	// entries matching the filters.
	List(ctx context.Context, ownerID string, query models.ListQuery, sortKey models.SortKey) ([]models.CredentialEntry, int64, error)
}
