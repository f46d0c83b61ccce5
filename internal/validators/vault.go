// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/PandorAura/PasswordVault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldOwnerID  = "owner_id"
	FieldKDFSalt  = "kdf_salt"
	FieldAuthHash = "auth_hash"

	FieldCredential = "credential"

	FieldPage   = "page"
	FieldSize   = "size"
	FieldSortBy = "sort_by"

	FieldRangePrefix = "range_prefix"
	FieldAccount     = "account"
)

// MaxAccountLength bounds breached-account lookups (the longest valid
// e-mail address).
const MaxAccountLength = 320

// MaxOwnerIDLength matches the owner_id column width.
const MaxOwnerIDLength = 255

var rangePrefixPattern = regexp.MustCompile(`^[0-9A-F]{5}$`)

// RangePrefix is a k-anonymity hash prefix, already normalised by the
// caller (trimmed and upper-cased).
type RangePrefix string

// Account is a breached-account lookup key, already trimmed by the caller.
type Account string

// OwnerID is an owner identity taken from a verified token or a query
// parameter.
type OwnerID string

// VaultValidator validates every inbound value of the vault API: vault
// metadata, credential inputs, list queries and breach lookup keys.
type VaultValidator struct {
	structs *validator.Validate
}

// NewVaultValidator returns a Validator with the "notblank" rule registered.
func NewVaultValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// RegisterValidation only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &VaultValidator{structs: v}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultMetadata:
		return v.validateVaultMetadata(ctx, value, fields...)
	case *models.VaultMetadata:
		return v.validateVaultMetadata(ctx, *value, fields...)

	case models.CredentialInput:
		return v.validateCredentialInput(ctx, value, fields...)
	case *models.CredentialInput:
		return v.validateCredentialInput(ctx, *value, fields...)

	case models.ListQuery:
		return v.validateListQuery(ctx, value, fields...)
	case *models.ListQuery:
		return v.validateListQuery(ctx, *value, fields...)

	case RangePrefix:
		return v.validateRangePrefix(value, fields...)
	case Account:
		return v.validateAccount(value, fields...)
	case OwnerID:
		if err := onlyField(FieldOwnerID, fields); err != nil {
			return err
		}
		return validateOwnerID(string(value))

	default:
		return ErrUnsupportedType
	}
}

// validateVaultMetadata checks the setup payload.
//
// Default validated fields: OwnerID, KDFSalt, AuthHash.
func (v *VaultValidator) validateVaultMetadata(_ context.Context, vault models.VaultMetadata, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldKDFSalt, FieldAuthHash}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if err := validateOwnerID(vault.OwnerID); err != nil {
				return err
			}
		case FieldKDFSalt:
			if isBlank(vault.KDFSalt) {
				return ErrBlankKDFSalt
			}
		case FieldAuthHash:
			if isBlank(vault.AuthHash) {
				return ErrBlankAuthHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentialInput runs the struct tags on [models.CredentialInput]
// and reports the first failing field by its JSON name.
func (v *VaultValidator) validateCredentialInput(ctx context.Context, input models.CredentialInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredential}
	}

	for _, f := range fields {
		if f != FieldCredential {
			return ErrUnknownField
		}
		if err := v.structs.StructCtx(ctx, input); err != nil {
			return fieldError(err)
		}
	}

	return nil
}

// validateListQuery checks paging bounds and the sort key. Transports fill
// in the default size before calling, so size zero is rejected here. A page
// whose offset would not fit in int64 is out of range.
//
// Default validated fields: Page, Size, SortBy.
func (v *VaultValidator) validateListQuery(_ context.Context, query models.ListQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldSize, FieldSortBy}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if !query.PageInRange() {
				return ErrInvalidPage
			}
		case FieldSize:
			if query.Size < 1 || query.Size > models.MaxPageSize {
				return ErrInvalidPageSize
			}
		case FieldSortBy:
			if _, ok := models.ResolveSortKey(query.SortBy); !ok {
				return fmt.Errorf("%w %q", ErrInvalidSortKey, query.SortBy)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateRangePrefix(prefix RangePrefix, fields ...string) error {
	if err := onlyField(FieldRangePrefix, fields); err != nil {
		return err
	}
	if !rangePrefixPattern.MatchString(string(prefix)) {
		return ErrInvalidRange
	}
	return nil
}

func (v *VaultValidator) validateAccount(account Account, fields ...string) error {
	if err := onlyField(FieldAccount, fields); err != nil {
		return err
	}
	if account == "" || utf8.RuneCountInString(string(account)) > MaxAccountLength {
		return ErrInvalidAccount
	}
	return nil
}

func onlyField(want string, fields []string) error {
	for _, f := range fields {
		if f != want {
			return ErrUnknownField
		}
	}
	return nil
}

func validateOwnerID(ownerID string) error {
	if isBlank(ownerID) {
		return ErrBlankOwnerID
	}
	if utf8.RuneCountInString(ownerID) > MaxOwnerIDLength {
		return ErrOwnerIDTooLong
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// fieldError turns validator.ValidationErrors into ErrBlankField or
// ErrFieldTooLong naming the offending JSON field.
func fieldError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	if fe.Tag() == "max" {
		return fmt.Errorf("%w: %s exceeds %s characters", ErrFieldTooLong, fe.Field(), fe.Param())
	}
	return fmt.Errorf("%w: %s", ErrBlankField, fe.Field())
}
