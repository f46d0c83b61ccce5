// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound clients for the third-party breach
// intelligence services.
//
// The primary abstraction is [BreachProvider], which decouples the service
// layer from the upstream protocol. The package ships an HTTP implementation
// ([NewHTTPBreachProvider]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUpstreamStatus] for any
// other non-2xx status).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/breach_provider_mock.go -package=mock

// BreachProvider fetches leaked-credential intelligence. Implementations make
// exactly one outbound attempt per call and abort it when ctx is cancelled.
type BreachProvider interface {
	// Range returns the raw k-anonymity response body for a 5-character
	// upper-case hexadecimal hash prefix.
	Range(ctx context.Context, prefix string) ([]byte, error)

	// BreachedAccount returns the raw JSON list of breaches for account.
	// An upstream 404 is reported as [ErrNotFound].
	BreachedAccount(ctx context.Context, account string) ([]byte, error)
}
