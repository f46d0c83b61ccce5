// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PandorAura/PasswordVault/internal/config"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFromDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want Dialect
	}{
		{"postgres://u:p@localhost:5432/vault?sslmode=disable", DialectPostgres},
		{"postgresql://localhost/vault", DialectPostgres},
		{"sqlite://vault.db", DialectSQLite},
		{"file:vault.db?cache=shared", DialectSQLite},
		{"mysql://localhost/vault", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, dialectFromDSN(tt.dsn))
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "vault.db?_foreign_keys=1", sqliteDSN("sqlite://vault.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=1", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "file:x?_fk=1", sqliteDSN("file:x?_fk=1"))
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	_, err := NewConnect(testContext(), config.DB{DSN: "mysql://localhost/vault"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

// newSQLiteStorages opens a private in-memory database with the schema applied.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", name)

	db, err := NewConnect(testContext(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	return NewStorages(db, logger.Nop())
}

func TestSQLite_VaultLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	meta := models.VaultMetadata{OwnerID: "alice", KDFSalt: "c2FsdA==", AuthHash: "aGFzaA==", CreatedAt: fixedNow}
	require.NoError(t, s.VaultRepository.Create(ctx, meta))

	err := s.VaultRepository.Create(ctx, meta)
	assert.ErrorIs(t, err, ErrVaultAlreadyExists)

	got, err := s.VaultRepository.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "c2FsdA==", got.KDFSalt)
	assert.Equal(t, "aGFzaA==", got.AuthHash)

	_, err = s.VaultRepository.Get(ctx, "bob")
	assert.ErrorIs(t, err, ErrVaultNotFound)

	exists, err := s.OwnerRepository.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSQLite_CredentialOwnershipIsolation(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	require.NoError(t, s.CredentialRepository.Create(ctx, sampleEntry("a-1", "alice")))

	// bob can neither update nor delete alice's entry
	foreign := sampleEntry("a-1", "bob")
	foreign.Title = "hijacked"
	assert.ErrorIs(t, s.CredentialRepository.Update(ctx, foreign), ErrCredentialNotFound)
	assert.ErrorIs(t, s.CredentialRepository.Delete(ctx, "a-1", "bob"), ErrCredentialNotFound)

	got, err := s.CredentialRepository.Get(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "GitHub", got.Title)
	assert.Equal(t, "alice", got.OwnerID)
	assert.Equal(t, "q83vEjRWeJA=", got.Ciphertext)

	entries, total, err := s.CredentialRepository.List(ctx, "bob", models.ListQuery{Size: 10}, models.SortByTitle)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, entries)
}

func TestSQLite_ListPaginationIsCompleteAndStable(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	// identical titles force the id tiebreaker to decide the order
	for i := 0; i < 7; i++ {
		e := sampleEntry(fmt.Sprintf("id-%02d", i), "alice")
		e.Title = "Same"
		e.CreatedAt = fixedNow.Add(time.Duration(i) * time.Minute)
		e.UpdatedAt = e.CreatedAt
		require.NoError(t, s.CredentialRepository.Create(ctx, e))
	}

	seen := map[string]int{}
	var total int64
	for page := 0; page < 3; page++ {
		entries, n, err := s.CredentialRepository.List(ctx, "alice", models.ListQuery{Page: page, Size: 3}, models.SortByTitle)
		require.NoError(t, err)
		total = n
		for _, e := range entries {
			seen[e.ID]++
		}
	}

	assert.Equal(t, int64(7), total)
	assert.Len(t, seen, 7)
	for id, count := range seen {
		assert.Equal(t, 1, count, id)
	}
}

func TestSQLite_ListSearchAndCategory(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	bank := sampleEntry("b-1", "alice")
	bank.Title = "Chase"
	bank.Category = models.CategoryBanking
	bank.URL = strPtr("https://chase.com")

	mail := sampleEntry("m-1", "alice")
	mail.Title = "Inbox"
	mail.Category = models.CategoryEmail
	mail.URL = nil
	mail.Notes = strPtr("Personal GMAIL account")

	require.NoError(t, s.CredentialRepository.Create(ctx, bank))
	require.NoError(t, s.CredentialRepository.Create(ctx, mail))

	entries, total, err := s.CredentialRepository.List(ctx, "alice", models.ListQuery{Size: 10, Search: "gmail"}, models.SortByTitle)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, "m-1", entries[0].ID)

	entries, _, err = s.CredentialRepository.List(ctx, "alice", models.ListQuery{Size: 10, Category: "banking"}, models.SortByTitle)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b-1", entries[0].ID)

	entries, _, err = s.CredentialRepository.List(ctx, "alice", models.ListQuery{Size: 10, Direction: "desc"}, models.SortByTitle)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Inbox", entries[0].Title)
}

func TestSQLite_SearchFoldsNonASCIICase(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	entry := sampleEntry("u-1", "alice")
	entry.Title = "Ärztekammer"
	entry.Notes = strPtr("ÉCOLE portal")
	require.NoError(t, s.CredentialRepository.Create(ctx, entry))

	for _, term := range []string{"ärzte", "ÄRZTE", "école"} {
		entries, total, err := s.CredentialRepository.List(ctx, "alice", models.ListQuery{Size: 10, Search: term}, models.SortByTitle)
		require.NoError(t, err, term)
		assert.Equal(t, int64(1), total, term)
		require.Len(t, entries, 1, term)
		assert.Equal(t, "u-1", entries[0].ID, term)
	}
}

func TestSQLite_TitleOrderFoldsNonASCIICase(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	upper := sampleEntry("u-1", "alice")
	upper.Title = "Ébène"
	lower := sampleEntry("u-2", "alice")
	lower.Title = "éa"
	require.NoError(t, s.CredentialRepository.Create(ctx, upper))
	require.NoError(t, s.CredentialRepository.Create(ctx, lower))

	entries, _, err := s.CredentialRepository.List(ctx, "alice", models.ListQuery{Size: 10}, models.SortByTitle)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "u-2", entries[0].ID)
	assert.Equal(t, "u-1", entries[1].ID)
}

func TestUnicodeLower(t *testing.T) {
	assert.Equal(t, "ärzte", unicodeLower("ÄRZTE"))
	assert.Equal(t, "école", unicodeLower([]byte("ÉCOLE")))
	assert.Nil(t, unicodeLower(nil))
	assert.Equal(t, int64(7), unicodeLower(int64(7)))
}

func TestSQLite_OwnerDeleteCascades(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()

	require.NoError(t, s.VaultRepository.Create(ctx, models.VaultMetadata{OwnerID: "alice", KDFSalt: "s", AuthHash: "h", CreatedAt: fixedNow}))
	require.NoError(t, s.CredentialRepository.Create(ctx, sampleEntry("a-1", "alice")))
	require.NoError(t, s.CredentialRepository.Create(ctx, sampleEntry("b-1", "bob")))

	require.NoError(t, s.OwnerRepository.Delete(ctx, "alice"))

	_, err := s.VaultRepository.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrVaultNotFound)
	_, err = s.CredentialRepository.Get(ctx, "a-1")
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	// other owners are untouched
	_, err = s.CredentialRepository.Get(ctx, "b-1")
	assert.NoError(t, err)

	assert.ErrorIs(t, s.OwnerRepository.Delete(ctx, "alice"), ErrOwnerNotFound)
}
