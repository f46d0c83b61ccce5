// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request input. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not a
	// well-formed bearer credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoOwnerInContext is returned when a protected handler runs without
	// an owner identity stored by the auth middleware.
	ErrNoOwnerInContext = errors.New("no owner identity in request context")

	// ErrInvalidQueryParameter is returned when a numeric query parameter
	// cannot be parsed.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)
