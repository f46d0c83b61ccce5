// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Owner is the local record of an externally authenticated identity.
//
// An Owner row is created implicitly the first time the identity sets up a
// vault or stores a credential, and is removed only by the gated account
// deletion together with everything it owns.
type Owner struct {
	// OwnerID is the identity string issued by the identity provider
	// (the "sub" claim of the bearer token).
	OwnerID string `json:"ownerId"`

	// CreatedAt is the moment the owner was first seen by the server.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Owner model.
func (o Owner) TableName() string {
	return "owners"
}
