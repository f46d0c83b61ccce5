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

// credentialRepository is the SQL implementation of [CredentialRepository].
// Mutating statements are conditioned on (id, owner_id), so ownership check
// and write happen atomically.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *credentialRepository) Create(ctx context.Context, entry models.CredentialEntry) error {
	log := logger.FromContext(ctx).With().Str("func", "credentialRepository.Create").Logger()

	query, args, err := buildInsertCredentialQuery(r.db.builder(), entry)
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

	if err = ensureOwner(ctx, r.db, tx, entry.OwnerID, entry.CreatedAt); err != nil {
		log.Err(err).Msg("error ensuring owner")
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("id", entry.ID).Msg("error inserting credential")
		return r.db.wrap(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return r.db.wrap(ErrCommittingTransaction, err)
	}

	return nil
}

func (r *credentialRepository) Get(ctx context.Context, id string) (models.CredentialEntry, error) {
	log := logger.FromContext(ctx).With().Str("func", "credentialRepository.Get").Logger()

	query, args, err := buildSelectCredentialQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Msg("error building query")
		return models.CredentialEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanCredential(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CredentialEntry{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).Str("id", id).Msg("error selecting credential")
		return models.CredentialEntry{}, r.db.wrap(ErrScanningRow, err)
	}

	return entry, nil
}

func (r *credentialRepository) Update(ctx context.Context, entry models.CredentialEntry) error {
	log := logger.FromContext(ctx).With().Str("func", "credentialRepository.Update").Logger()

	query, args, err := buildUpdateCredentialQuery(r.db.builder(), entry)
	if err != nil {
		log.Err(err).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOwned(ctx, query, args)
}

func (r *credentialRepository) Delete(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx).With().Str("func", "credentialRepository.Delete").Logger()

	query, args, err := buildDeleteCredentialQuery(r.db.builder(), id, ownerID)
	if err != nil {
		log.Err(err).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOwned(ctx, query, args)
}

// execOwned runs an owner-scoped statement and reports
// [ErrCredentialNotFound] when it touched no row.
func (r *credentialRepository) execOwned(ctx context.Context, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.execOwned").Msg("error executing statement")
		return r.db.wrap(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.wrap(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

func (r *credentialRepository) List(ctx context.Context, ownerID string, q models.ListQuery, sortKey models.SortKey) ([]models.CredentialEntry, int64, error) {
	log := logger.FromContext(ctx).With().Str("func", "credentialRepository.List").Logger()

	b := r.db.builder()
	countQuery, countArgs, err := buildCountCredentialsQuery(b, ownerID, q)
	if err != nil {
		log.Err(err).Msg("error building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	listQuery, listArgs, err := buildListCredentialsQuery(b, ownerID, q, sortKey)
	if err != nil {
		log.Err(err).Msg("error building list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Msg("error counting credentials")
		return nil, 0, r.db.wrap(ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Msg("error listing credentials")
		return nil, 0, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.CredentialEntry, 0, q.Size)
	for rows.Next() {
		entry, err := scanCredential(rows)
		if err != nil {
			log.Err(err).Msg("error scanning credential row")
			return nil, 0, r.db.wrap(ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error iterating credential rows")
		return nil, 0, r.db.wrap(ErrScanningRows, err)
	}

	return entries, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (models.CredentialEntry, error) {
	var (
		entry    models.CredentialEntry
		category string
		url      sql.NullString
		strength sql.NullString
		notes    sql.NullString
	)

	err := row.Scan(
		&entry.ID,
		&entry.OwnerID,
		&entry.Title,
		&entry.UsernameOrEmail,
		&entry.Ciphertext,
		&entry.IV,
		&url,
		&category,
		&strength,
		&notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return models.CredentialEntry{}, err
	}

	entry.Category = models.ResolveCategory(category)
	if url.Valid {
		entry.URL = &url.String
	}
	if notes.Valid {
		entry.Notes = &notes.String
	}
	if strength.Valid {
		entry.Strength = models.ResolveStrength(strength.String)
	}

	return entry, nil
}
