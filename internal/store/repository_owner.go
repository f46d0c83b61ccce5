// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/PandorAura/PasswordVault/internal/logger"
)

type ownerRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewOwnerRepository(db *DB, logger *logger.Logger) OwnerRepository {
	logger.Debug().Msg("creating owner repository")
	return &ownerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ownerRepository) Exists(ctx context.Context, ownerID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOwnerExistsQuery(r.db.builder(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "ownerRepository.Exists").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "ownerRepository.Exists").Msg("error checking owner existence")
		return false, r.db.wrap(ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// Delete removes credentials, vault metadata and the owner row in that order
// inside a single transaction. Nothing is removed if the owner is absent.
func (r *ownerRepository) Delete(ctx context.Context, ownerID string) error {
	log := logger.FromContext(ctx).With().Str("func", "ownerRepository.Delete").Logger()

	b := r.db.builder()
	statements := make([]statement, 0, 3)
	for _, table := range []string{credentialsTable, vaultTable, ownersTable} {
		query, args, err := buildDeleteByOwnerQuery(b, table, ownerID)
		if err != nil {
			log.Err(err).Str("table", table).Msg("error building query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		statements = append(statements, statement{query: query, args: args})
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return r.db.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var ownersDeleted int64
	for _, stmt := range statements {
		res, err := tx.ExecContext(ctx, stmt.query, stmt.args...)
		if err != nil {
			log.Err(err).Msg("error deleting owner data")
			return r.db.wrap(ErrExecutingStatement, err)
		}
		ownersDeleted, err = res.RowsAffected()
		if err != nil {
			return r.db.wrap(ErrExecutingStatement, err)
		}
	}

	// the last statement removed the owner row itself
	if ownersDeleted == 0 {
		log.Warn().Msg("owner not found")
		return ErrOwnerNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return r.db.wrap(ErrCommittingTransaction, err)
	}

	return nil
}

// ensureOwner inserts the owner row unless it already exists.
func ensureOwner(ctx context.Context, db *DB, exec execer, ownerID string, now time.Time) error {
	query, args, err := buildEnsureOwnerQuery(db.builder(), ownerID, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = exec.ExecContext(ctx, query, args...); err != nil {
		return db.wrap(ErrExecutingStatement, err)
	}

	return nil
}
