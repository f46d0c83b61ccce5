// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrVaultAlreadyExists is returned when an owner already has vault
	// metadata. The unique key on owner_id makes this race-free.
	ErrVaultAlreadyExists = errors.New("vault metadata already exists")

	// ErrVaultNotFound is returned when an owner has no vault metadata.
	ErrVaultNotFound = errors.New("vault metadata was not found")

	// ErrOwnerNotFound is returned when no owner row matches.
	ErrOwnerNotFound = errors.New("owner was not found")

	// ErrCredentialNotFound is returned when no credential matches the
	// requested id (and owner, where the statement is owner-scoped).
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrTransient marks driver failures the error classifier considers
	// retryable.
	ErrTransient = errors.New("transient database failure")

	// ErrUnsupportedDSN is returned when the DSN scheme names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery      = errors.New("error building sql query")
	ErrExecutingQuery        = errors.New("error executing sql query")
	ErrBeginningTransaction  = errors.New("failed to begin transaction")
	ErrCommittingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement    = errors.New("failed to execute statement")
	ErrScanningRow           = errors.New("failed to scan row")
	ErrScanningRows          = errors.New("failed to scan rows")
)
