// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/PandorAura/PasswordVault/models"
)

const (
	ownersTable      = "owners"
	vaultTable       = "vault_metadata"
	credentialsTable = "credentials"
)

var credentialColumns = []string{
	"id",
	"owner_id",
	"title",
	"username_email",
	"ciphertext",
	"iv",
	"website_url",
	"category",
	"strength",
	"notes",
	"created_at",
	"updated_at",
}

// credentialSortColumns maps whitelisted sort keys onto SQL expressions.
// Nullable columns are coalesced so both engines order them identically.
var credentialSortColumns = map[models.SortKey]string{
	models.SortByTitle:           "LOWER(title)",
	models.SortByURL:             "LOWER(COALESCE(website_url, ''))",
	models.SortByUsernameOrEmail: "LOWER(username_email)",
	models.SortByCategory:        "category",
	models.SortByStrength: "CASE strength" +
		" WHEN 'VERYWEAK' THEN 1 WHEN 'WEAK' THEN 2 WHEN 'FAIR' THEN 3" +
		" WHEN 'STRONG' THEN 4 WHEN 'VERYSTRONG' THEN 5 ELSE 0 END",
	models.SortByCreatedAt: "created_at",
	models.SortByUpdatedAt: "updated_at",
}

type statement struct {
	query string
	args  []any
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildEnsureOwnerQuery(b sq.StatementBuilderType, ownerID string, now time.Time) (string, []any, error) {
	return b.Insert(ownersTable).
		Columns("owner_id", "created_at").
		Values(ownerID, now).
		Suffix("ON CONFLICT (owner_id) DO NOTHING").
		ToSql()
}

func buildOwnerExistsQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(ownersTable).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildDeleteByOwnerQuery(b sq.StatementBuilderType, table, ownerID string) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildInsertVaultQuery(b sq.StatementBuilderType, meta models.VaultMetadata) (string, []any, error) {
	return b.Insert(vaultTable).
		Columns("owner_id", "kdf_salt", "auth_hash", "created_at").
		Values(meta.OwnerID, meta.KDFSalt, meta.AuthHash, meta.CreatedAt).
		ToSql()
}

func buildSelectVaultQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return b.Select("owner_id", "kdf_salt", "auth_hash", "created_at").
		From(vaultTable).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildInsertCredentialQuery(b sq.StatementBuilderType, e models.CredentialEntry) (string, []any, error) {
	return b.Insert(credentialsTable).
		Columns(credentialColumns...).
		Values(
			e.ID,
			e.OwnerID,
			e.Title,
			e.UsernameOrEmail,
			e.Ciphertext,
			e.IV,
			e.URL,
			string(e.Category),
			strengthValue(e.Strength),
			e.Notes,
			e.CreatedAt,
			e.UpdatedAt,
		).
		ToSql()
}

func buildSelectCredentialQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateCredentialQuery(b sq.StatementBuilderType, e models.CredentialEntry) (string, []any, error) {
	return b.Update(credentialsTable).
		Set("title", e.Title).
		Set("username_email", e.UsernameOrEmail).
		Set("ciphertext", e.Ciphertext).
		Set("iv", e.IV).
		Set("website_url", e.URL).
		Set("category", string(e.Category)).
		Set("strength", strengthValue(e.Strength)).
		Set("notes", e.Notes).
		Set("updated_at", e.UpdatedAt).
		Where(sq.Eq{"id": e.ID}).
		Where(sq.Eq{"owner_id": e.OwnerID}).
		ToSql()
}

func buildDeleteCredentialQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Delete(credentialsTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

// credentialFilter is the WHERE clause shared by the listing and its count.
func credentialFilter(ownerID string, q models.ListQuery) sq.And {
	where := sq.And{sq.Eq{"owner_id": ownerID}}

	if category := q.CategoryFilter(); category != "" {
		where = append(where, sq.Expr("LOWER(category) = ?", category))
	}

	if term := q.SearchTerm(); term != "" {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		where = append(where, sq.Or{
			sq.Expr(`LOWER(title) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(COALESCE(website_url, '')) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(username_email) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(COALESCE(notes, '')) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	return where
}

func buildListCredentialsQuery(b sq.StatementBuilderType, ownerID string, q models.ListQuery, key models.SortKey) (string, []any, error) {
	column, ok := credentialSortColumns[key]
	if !ok {
		column = credentialSortColumns[models.DefaultSortKey]
	}

	direction := "ASC"
	if q.Descending() {
		direction = "DESC"
	}

	return b.Select(credentialColumns...).
		From(credentialsTable).
		Where(credentialFilter(ownerID, q)).
		OrderBy(column+" "+direction, "id "+direction).
		Limit(uint64(q.Size)).
		Offset(q.Offset()).
		ToSql()
}

func buildCountCredentialsQuery(b sq.StatementBuilderType, ownerID string, q models.ListQuery) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(credentialsTable).
		Where(credentialFilter(ownerID, q)).
		ToSql()
}

func strengthValue(s *models.Strength) any {
	if s == nil {
		return nil
	}
	return string(*s)
}
