// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of JSON error responses. Keeping them in one place keeps the
// wording consistent throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError is returned for unexpected server-side
	// failures. The cause is logged, never echoed.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned when the database reported a
	// transient failure. Clients may retry.
	MsgStorageUnavailable = "storage temporarily unavailable"

	// MsgUnauthenticated is returned when no valid bearer token was
	// presented.
	MsgUnauthenticated = "authentication required"

	// MsgEmptyAuthorizationHeader is returned when the Authorization header
	// is missing.
	MsgEmptyAuthorizationHeader = "empty `Authorization` header"

	// MsgInvalidAuthorizationHeader is returned when the Authorization
	// header is not of the form "Bearer <token>".
	MsgInvalidAuthorizationHeader = "invalid `Authorization` header"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token fails
	// verification.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the master password check fails.
	MsgAccessDenied = "master password verification failed"

	// MsgMissingMasterPassword is returned when X-Master-Password is absent.
	MsgMissingMasterPassword = "X-Master-Password header is required"

	// MsgMissingOwner is returned when GET /api/vault/params has neither an
	// owner nor an email query parameter.
	MsgMissingOwner = "owner query parameter is required"

	// MsgVaultNotConfigured is returned when the owner has not run vault
	// setup yet.
	MsgVaultNotConfigured = "vault not configured"

	// MsgVaultAlreadyConfigured is returned on a second vault setup.
	MsgVaultAlreadyConfigured = "vault already configured"

	// MsgDataNotFound is returned when an entry is missing or belongs to
	// someone else.
	MsgDataNotFound = "data not found"

	// MsgBreachProviderError prefixes failures of the breach intelligence
	// upstream.
	MsgBreachProviderError = "breach provider error"

	// MsgRouteNotFound is returned for unknown routes.
	MsgRouteNotFound = "route not found"

	// MsgInvalidQueryParameter is returned when a numeric query parameter
	// does not parse.
	MsgInvalidQueryParameter = "invalid query parameter"
)
