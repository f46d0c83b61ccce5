// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrBlankField      = errors.New("field must not be blank")
	ErrBlankOwnerID    = errors.New("owner id is required")
	ErrOwnerIDTooLong  = errors.New("owner id must be at most 255 characters")
	ErrFieldTooLong    = errors.New("field is too long")
	ErrBlankKDFSalt    = errors.New("kdf salt is required")
	ErrBlankAuthHash   = errors.New("auth hash is required")
	ErrInvalidPage     = errors.New("page must be between 0 and the last addressable page")
	ErrInvalidPageSize = errors.New("size must be between 1 and 100")
	ErrInvalidSortKey  = errors.New("unknown sort key")
	ErrInvalidRange    = errors.New("prefix must be exactly 5 hexadecimal characters")
	ErrInvalidAccount  = errors.New("account must be 1 to 320 characters")
)
