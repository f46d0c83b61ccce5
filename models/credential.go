// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CredentialEntry is one stored secret of an owner.
//
// Ciphertext and IV are produced by the client and are opaque to the server:
// they are stored and returned byte-for-byte and never inspected. Every read,
// update and delete is scoped by OwnerID.
type CredentialEntry struct {
	ID              string
	OwnerID         string
	Title           string
	UsernameOrEmail string
	Ciphertext      string
	IV              string
	URL             *string
	Category        Category
	Strength        *Strength
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the name of the database table
// associated with the CredentialEntry model.
func (c CredentialEntry) TableName() string {
	return "credentials"
}

// CredentialInput is the mutable field set accepted by create and update.
//
// Category and Strength arrive as free-form strings and are resolved with
// [ResolveCategory] and [ResolveStrength] before they reach storage.
type CredentialInput struct {
	Title           string  `json:"title" validate:"notblank,max=255"`
	UsernameOrEmail string  `json:"username" validate:"notblank,max=320"`
	Ciphertext      string  `json:"encryptedPassword" validate:"notblank"`
	IV              string  `json:"encryptionIv" validate:"notblank"`
	URL             *string `json:"url"`
	Category        string  `json:"category"`
	Notes           *string `json:"notes"`
	Strength        string  `json:"strength"`
}

// Apply copies the input onto entry, replacing every mutable field.
// Identity and timestamps are left untouched.
func (in CredentialInput) Apply(entry *CredentialEntry) {
	entry.Title = in.Title
	entry.UsernameOrEmail = in.UsernameOrEmail
	entry.Ciphertext = in.Ciphertext
	entry.IV = in.IV
	entry.URL = in.URL
	entry.Category = ResolveCategory(in.Category)
	entry.Strength = ResolveStrength(in.Strength)
	entry.Notes = in.Notes
}

// CredentialView is the outward JSON representation of a [CredentialEntry].
type CredentialView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	UsernameOrEmail string    `json:"usernameOrEmail"`
	WebsiteURL      *string   `json:"websiteUrl"`
	Ciphertext      string    `json:"encryptedPassword"`
	IV              string    `json:"encryptionIv"`
	Notes           *string   `json:"notes"`
	Category        Category  `json:"category"`
	Strength        *string   `json:"strength"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// View converts the entry to its outward representation.
// Strength is rendered with its human-readable label.
func (c CredentialEntry) View() CredentialView {
	var strength *string
	if c.Strength != nil {
		label := c.Strength.Label()
		strength = &label
	}

	return CredentialView{
		ID:              c.ID,
		Title:           c.Title,
		UsernameOrEmail: c.UsernameOrEmail,
		WebsiteURL:      c.URL,
		Ciphertext:      c.Ciphertext,
		IV:              c.IV,
		Notes:           c.Notes,
		Category:        c.Category,
		Strength:        strength,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
