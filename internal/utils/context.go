// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON response writing, the outbound HTTP
// client, JWT parsing, identifier generation and constant-time digests.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions
// with string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the context key under which the authentication
// middleware stores the caller's owner identity.
var OwnerIDCtxKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying ownerID.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}

// GetOwnerIDFromContext retrieves the owner identity stored by
// [WithOwnerID]. ok is false when the value is missing, empty or of an
// unexpected type.
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(string)
	return ownerID, ok && ownerID != ""
}
