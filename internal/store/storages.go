// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/PandorAura/PasswordVault/internal/logger"

// Storages aggregates every repository backed by one database connection.
type Storages struct {
	DB *DB

	OwnerRepository      OwnerRepository
	VaultRepository      VaultRepository
	CredentialRepository CredentialRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                   db,
		OwnerRepository:      NewOwnerRepository(db, logger),
		VaultRepository:      NewVaultRepository(db, logger),
		CredentialRepository: NewCredentialRepository(db, logger),
	}
}
