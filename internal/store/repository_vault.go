// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/models"
)

type vaultRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

func (r *vaultRepository) Create(ctx context.Context, meta models.VaultMetadata) error {
	log := logger.FromContext(ctx).With().Str("func", "vaultRepository.Create").Logger()

	query, args, err := buildInsertVaultQuery(r.db.builder(), meta)
	if err != nil {
		log.Err(err).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return r.db.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = ensureOwner(ctx, r.db, tx, meta.OwnerID, meta.CreatedAt); err != nil {
		log.Err(err).Msg("error ensuring owner")
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			log.Warn().Msg("vault metadata already exists")
			return ErrVaultAlreadyExists
		}
		log.Err(err).Msg("error inserting vault metadata")
		return r.db.wrap(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return r.db.wrap(ErrCommittingTransaction, err)
	}

	return nil
}

func (r *vaultRepository) Get(ctx context.Context, ownerID string) (models.VaultMetadata, error) {
	log := logger.FromContext(ctx).With().Str("func", "vaultRepository.Get").Logger()

	query, args, err := buildSelectVaultQuery(r.db.builder(), ownerID)
	if err != nil {
		log.Err(err).Msg("error building query")
		return models.VaultMetadata{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var meta models.VaultMetadata
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&meta.OwnerID, &meta.KDFSalt, &meta.AuthHash, &meta.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultMetadata{}, ErrVaultNotFound
	}
	if err != nil {
		log.Err(err).Msg("error selecting vault metadata")
		return models.VaultMetadata{}, r.db.wrap(ErrScanningRow, err)
	}

	return meta, nil
}
