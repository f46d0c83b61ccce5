// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newPostgresDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var credentialRowColumns = []string{
	"id", "owner_id", "title", "username_email", "ciphertext", "iv",
	"website_url", "category", "strength", "notes", "created_at", "updated_at",
}

func strPtr(s string) *string {
	return &s
}

func sampleEntry(id, owner string) models.CredentialEntry {
	strength := models.StrengthStrong
	return models.CredentialEntry{
		ID:              id,
		OwnerID:         owner,
		Title:           "GitHub",
		UsernameOrEmail: "alice@example.com",
		Ciphertext:      "q83vEjRWeJA=",
		IV:              "AAECAwQFBgcICQoL",
		URL:             strPtr("https://github.com"),
		Category:        models.CategoryLogin,
		Strength:        &strength,
		CreatedAt:       fixedNow,
		UpdatedAt:       fixedNow,
	}
}
