// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PandorAura/PasswordVault/models"
)

func validInput() models.CredentialInput {
	return models.CredentialInput{
		Title:           "Mail",
		UsernameOrEmail: "me@example.com",
		Ciphertext:      "Y2lwaGVy",
		IV:              "aXY=",
	}
}

func TestVaultValidator_VaultMetadata(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		vault   models.VaultMetadata
		fields  []string
		wantErr error
	}{
		{name: "valid", vault: models.VaultMetadata{OwnerID: "o", KDFSalt: "s", AuthHash: "h"}},
		{name: "blank owner", vault: models.VaultMetadata{OwnerID: " ", KDFSalt: "s", AuthHash: "h"}, wantErr: ErrBlankOwnerID},
		{name: "owner at column width", vault: models.VaultMetadata{OwnerID: strings.Repeat("ü", MaxOwnerIDLength), KDFSalt: "s", AuthHash: "h"}},
		{name: "owner too long", vault: models.VaultMetadata{OwnerID: strings.Repeat("o", MaxOwnerIDLength+1), KDFSalt: "s", AuthHash: "h"}, wantErr: ErrOwnerIDTooLong},
		{name: "blank salt", vault: models.VaultMetadata{OwnerID: "o", KDFSalt: "\t", AuthHash: "h"}, wantErr: ErrBlankKDFSalt},
		{name: "blank hash", vault: models.VaultMetadata{OwnerID: "o", KDFSalt: "s"}, wantErr: ErrBlankAuthHash},
		{name: "scoped to hash only", vault: models.VaultMetadata{AuthHash: "h"}, fields: []string{FieldAuthHash}},
		{name: "unknown field", vault: models.VaultMetadata{}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.vault, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVaultValidator_CredentialInput(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(*models.CredentialInput)
		wantField string
		wantErr   error
	}{
		{name: "valid", mutate: func(*models.CredentialInput) {}},
		{name: "optional fields may be empty", mutate: func(in *models.CredentialInput) { in.Category = ""; in.Strength = "" }},
		{name: "blank title", mutate: func(in *models.CredentialInput) { in.Title = "  " }, wantField: "title"},
		{name: "blank username", mutate: func(in *models.CredentialInput) { in.UsernameOrEmail = "" }, wantField: "username"},
		{name: "blank ciphertext", mutate: func(in *models.CredentialInput) { in.Ciphertext = "" }, wantField: "encryptedPassword"},
		{name: "blank iv", mutate: func(in *models.CredentialInput) { in.IV = "\n" }, wantField: "encryptionIv"},
		{name: "title at column width", mutate: func(in *models.CredentialInput) { in.Title = strings.Repeat("é", 255) }},
		{name: "title too long", mutate: func(in *models.CredentialInput) { in.Title = strings.Repeat("t", 256) }, wantField: "title", wantErr: ErrFieldTooLong},
		{name: "username at column width", mutate: func(in *models.CredentialInput) { in.UsernameOrEmail = strings.Repeat("u", 320) }},
		{name: "username too long", mutate: func(in *models.CredentialInput) { in.UsernameOrEmail = strings.Repeat("u", 321) }, wantField: "username", wantErr: ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := v.Validate(ctx, in)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			wantErr := tt.wantErr
			if wantErr == nil {
				wantErr = ErrBlankField
			}
			require.ErrorIs(t, err, wantErr)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestVaultValidator_ListQuery(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		query   models.ListQuery
		wantErr error
	}{
		{name: "defaults", query: models.ListQuery{Size: 10}},
		{name: "max size", query: models.ListQuery{Size: 100, SortBy: "websiteUrl"}},
		{name: "negative page", query: models.ListQuery{Page: -1, Size: 10}, wantErr: ErrInvalidPage},
		{name: "last addressable page", query: models.ListQuery{Page: math.MaxInt64 / 100, Size: 100}},
		{name: "page offset overflows", query: models.ListQuery{Page: math.MaxInt64/100 + 1, Size: 100}, wantErr: ErrInvalidPage},
		{name: "zero size", query: models.ListQuery{Size: 0}, wantErr: ErrInvalidPageSize},
		{name: "oversized", query: models.ListQuery{Size: 101}, wantErr: ErrInvalidPageSize},
		{name: "unknown sort key", query: models.ListQuery{Size: 10, SortBy: "ciphertext"}, wantErr: ErrInvalidSortKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.query)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVaultValidator_RangePrefix(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, RangePrefix("21BD1")))
	assert.NoError(t, v.Validate(ctx, RangePrefix("00000"), FieldRangePrefix))

	for _, bad := range []string{"", "21bd1", "21BD", "21BD12", "GGGGG", "21 D1"} {
		assert.ErrorIs(t, v.Validate(ctx, RangePrefix(bad)), ErrInvalidRange, bad)
	}

	assert.ErrorIs(t, v.Validate(ctx, RangePrefix("21BD1"), FieldAccount), ErrUnknownField)
}

func TestVaultValidator_Account(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, Account("user@example.com")))
	assert.NoError(t, v.Validate(ctx, Account(strings.Repeat("a", MaxAccountLength))))

	assert.ErrorIs(t, v.Validate(ctx, Account("")), ErrInvalidAccount)
	assert.ErrorIs(t, v.Validate(ctx, Account(strings.Repeat("a", MaxAccountLength+1))), ErrInvalidAccount)
}

func TestVaultValidator_OwnerID(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, OwnerID("alice")))
	assert.NoError(t, v.Validate(ctx, OwnerID(strings.Repeat("a", MaxOwnerIDLength)), FieldOwnerID))

	assert.ErrorIs(t, v.Validate(ctx, OwnerID(" ")), ErrBlankOwnerID)
	assert.ErrorIs(t, v.Validate(ctx, OwnerID(strings.Repeat("a", MaxOwnerIDLength+1))), ErrOwnerIDTooLong)
	assert.ErrorIs(t, v.Validate(ctx, OwnerID("alice"), FieldAccount), ErrUnknownField)
}

func TestVaultValidator_UnsupportedType(t *testing.T) {
	v := NewVaultValidator()

	err := v.Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}
