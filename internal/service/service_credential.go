// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/store"
	"github.com/PandorAura/PasswordVault/models"
)

// IDGenerator issues identifiers for new credential entries.
type IDGenerator interface {
	Generate() string
}

// credentialService is the core CredentialService. Input validation is
// layered on top by credentialValidationService.
type credentialService struct {
	credentialRepository store.CredentialRepository
	ids                  IDGenerator

	now func() time.Time

	logger *logger.Logger
}

// NewCredentialService constructs the core CredentialService. Wrap it with
// [NewCredentialValidationService] before exposing it to transports.
func NewCredentialService(credentialRepository store.CredentialRepository, ids IDGenerator, now func() time.Time, logger *logger.Logger) CredentialService {
	if now == nil {
		now = time.Now
	}

	return &credentialService{
		credentialRepository: credentialRepository,
		ids:                  ids,
		now:                  now,
		logger:               logger,
	}
}

func (c *credentialService) Create(ctx context.Context, ownerID string, input models.CredentialInput) (models.CredentialEntry, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(ownerID) == "" {
		return models.CredentialEntry{}, fmt.Errorf("%w: no owner identity", ErrUnauthenticated)
	}

	now := c.timestamp()
	entry := models.CredentialEntry{
		ID:        c.ids.Generate(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(&entry)

	if err := c.credentialRepository.Create(ctx, entry); err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("credential creation failed")
		return models.CredentialEntry{}, mapStoreError(err)
	}

	log.Debug().Str("owner_id", ownerID).Str("credential_id", entry.ID).Msg("credential created")
	return entry, nil
}

func (c *credentialService) Get(ctx context.Context, id, ownerID string) (models.CredentialEntry, error) {
	return c.loadOwned(ctx, id, ownerID)
}

// Update replaces every mutable field of the entry. CreatedAt is preserved
// and UpdatedAt always ends up strictly after it.
func (c *credentialService) Update(ctx context.Context, id, ownerID string, input models.CredentialInput) (models.CredentialEntry, error) {
	log := logger.FromContext(ctx)

	entry, err := c.loadOwned(ctx, id, ownerID)
	if err != nil {
		return models.CredentialEntry{}, err
	}

	input.Apply(&entry)
	entry.UpdatedAt = c.timestamp()
	if !entry.UpdatedAt.After(entry.CreatedAt) {
		entry.UpdatedAt = entry.CreatedAt.Add(time.Microsecond)
	}

	if err = c.credentialRepository.Update(ctx, entry); err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			log.Debug().Str("credential_id", id).Str("reason", "removed concurrently").Msg("credential not found")
			return models.CredentialEntry{}, notFound(id)
		}
		log.Err(err).Str("credential_id", id).Msg("credential update failed")
		return models.CredentialEntry{}, mapStoreError(err)
	}

	return entry, nil
}

func (c *credentialService) Delete(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	if _, err := c.loadOwned(ctx, id, ownerID); err != nil {
		return err
	}

	if err := c.credentialRepository.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			log.Debug().Str("credential_id", id).Str("reason", "removed concurrently").Msg("credential not found")
			return notFound(id)
		}
		log.Err(err).Str("credential_id", id).Msg("credential deletion failed")
		return mapStoreError(err)
	}

	return nil
}

// List returns one page of the owner's entries.
func (c *credentialService) List(ctx context.Context, ownerID string, query models.ListQuery) (models.Page[models.CredentialView], error) {
	if strings.TrimSpace(ownerID) == "" {
		return models.Page[models.CredentialView]{}, fmt.Errorf("%w: no owner identity", ErrUnauthenticated)
	}
	if query.Size < 1 || query.Size > models.MaxPageSize || !query.PageInRange() {
		return models.Page[models.CredentialView]{}, fmt.Errorf("%w: page %d size %d out of range", ErrValidation, query.Page, query.Size)
	}

	sortKey, ok := models.ResolveSortKey(query.SortBy)
	if !ok {
		return models.Page[models.CredentialView]{}, fmt.Errorf("%w: unknown sort key %q", ErrValidation, query.SortBy)
	}

	entries, total, err := c.credentialRepository.List(ctx, ownerID, query, sortKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Msg("credential listing failed")
		return models.Page[models.CredentialView]{}, mapStoreError(err)
	}

	views := make([]models.CredentialView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, entry.View())
	}

	return models.NewPage(views, query.Page, query.Size, total), nil
}

// loadOwned fetches an entry and checks its owner. A missing entry and a
// foreign entry produce the same error; only the log tells them apart.
func (c *credentialService) loadOwned(ctx context.Context, id, ownerID string) (models.CredentialEntry, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(ownerID) == "" {
		return models.CredentialEntry{}, fmt.Errorf("%w: no owner identity", ErrUnauthenticated)
	}
	if strings.TrimSpace(id) == "" {
		log.Debug().Str("reason", "blank id").Msg("credential not found")
		return models.CredentialEntry{}, notFound(id)
	}

	entry, err := c.credentialRepository.Get(ctx, id)
	if errors.Is(err, store.ErrCredentialNotFound) {
		log.Debug().Str("credential_id", id).Str("reason", "absent").Msg("credential not found")
		return models.CredentialEntry{}, notFound(id)
	}
	if err != nil {
		log.Err(err).Str("credential_id", id).Msg("credential lookup failed")
		return models.CredentialEntry{}, mapStoreError(err)
	}

	if entry.OwnerID != ownerID {
		log.Warn().
			Str("credential_id", id).
			Str("owner_id", ownerID).
			Str("reason", "foreign owner").
			Msg("credential not found")
		return models.CredentialEntry{}, notFound(id)
	}

	return entry, nil
}

func (c *credentialService) timestamp() time.Time {
	return c.now().UTC().Truncate(time.Microsecond)
}

func notFound(id string) error {
	return fmt.Errorf("%w: credential %q", ErrNotFound, id)
}
