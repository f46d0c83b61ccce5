// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultMetadata holds the public unlock parameters of an owner's vault.
//
// KDFSalt and AuthHash are opaque client-produced strings. The server never
// derives either of them; AuthHash is only ever compared against a value the
// client presents. Exactly one row exists per owner and it never changes
// after setup.
type VaultMetadata struct {
	OwnerID   string    `json:"-"`
	KDFSalt   string    `json:"kdfSalt"`
	AuthHash  string    `json:"authHash"`
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the VaultMetadata model.
func (v VaultMetadata) TableName() string {
	return "vault_metadata"
}

// VaultParams is the public view of [VaultMetadata] returned to clients
// before unlock.
type VaultParams struct {
	KDFSalt  string `json:"kdfSalt"`
	AuthHash string `json:"authHash"`
}

// Params returns the public unlock parameters of the vault.
func (v VaultMetadata) Params() VaultParams {
	return VaultParams{KDFSalt: v.KDFSalt, AuthHash: v.AuthHash}
}

// VaultSetupRequest is the body of POST /api/vault/setup. Older clients send
// the salt as "salt"; "kdfSalt" wins when both are present.
type VaultSetupRequest struct {
	KDFSalt  string `json:"kdfSalt"`
	Salt     string `json:"salt"`
	AuthHash string `json:"authHash"`
}

// ResolvedSalt returns KDFSalt, falling back to the legacy Salt field.
func (r VaultSetupRequest) ResolvedSalt() string {
	if r.KDFSalt != "" {
		return r.KDFSalt
	}
	return r.Salt
}

// VaultVerifyRequest is the body of POST /api/vault/verify.
type VaultVerifyRequest struct {
	AuthHash string `json:"authHash"`
}

// VaultVerifyResponse reports whether the presented hash matched.
type VaultVerifyResponse struct {
	Valid bool `json:"valid"`
}
