// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/mock"
	"github.com/PandorAura/PasswordVault/internal/store"
	"github.com/PandorAura/PasswordVault/models"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) (*vaultService, *mock.MockVaultRepository) {
	t.Helper()
	repo := mock.NewMockVaultRepository(ctrl)

	svc := NewVaultService(repo, logger.Nop()).(*vaultService)
	svc.now = func() time.Time { return fixedTime }

	return svc, repo
}

// ── Setup ────────────────────────────────────────────────────────────────────

func TestVaultService_Setup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, models.VaultMetadata{
		OwnerID:   "alice",
		KDFSalt:   "c2FsdA==",
		AuthHash:  "aGFzaA==",
		CreatedAt: fixedTime,
	}).Return(nil)

	err := svc.Setup(ctx, "alice", "c2FsdA==", "aGFzaA==")

	require.NoError(t, err)
}

func TestVaultService_Setup_Validation(t *testing.T) {
	tests := []struct {
		name     string
		ownerID  string
		salt     string
		hash     string
		wantKind Kind
	}{
		{name: "blank salt", ownerID: "alice", salt: " ", hash: "h", wantKind: ErrValidation},
		{name: "blank hash", ownerID: "alice", salt: "s", hash: "", wantKind: ErrValidation},
		{name: "no identity", ownerID: "", salt: "s", hash: "h", wantKind: ErrUnauthenticated},
		{name: "owner wider than column", ownerID: strings.Repeat("a", 256), salt: "s", hash: "h", wantKind: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestVaultSvc(t, ctrl)

			err := svc.Setup(context.Background(), tt.ownerID, tt.salt, tt.hash)

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestVaultService_Setup_AlreadyConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestVaultSvc(t, ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(store.ErrVaultAlreadyExists)

	err := svc.Setup(context.Background(), "alice", "s", "h")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyConfigured)
}

func TestVaultService_Setup_TransientStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestVaultSvc(t, ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.Join(store.ErrTransient, errors.New("serialization failure")))

	err := svc.Setup(context.Background(), "alice", "s", "h")

	assert.Equal(t, ErrUnavailable, KindOf(err))
	assert.True(t, KindOf(err).Retryable())
}

// ── Params ───────────────────────────────────────────────────────────────────

func TestVaultService_Params_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestVaultSvc(t, ctrl)

	repo.EXPECT().Get(gomock.Any(), "alice").Return(models.VaultMetadata{
		OwnerID: "alice", KDFSalt: "s", AuthHash: "h", CreatedAt: fixedTime,
	}, nil)

	params, err := svc.Params(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, models.VaultParams{KDFSalt: "s", AuthHash: "h"}, params)
}

func TestVaultService_Params_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestVaultSvc(t, ctrl)

	repo.EXPECT().Get(gomock.Any(), "bob").Return(models.VaultMetadata{}, store.ErrVaultNotFound)

	_, err := svc.Params(context.Background(), "bob")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVaultService_Params_BlankOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.Params(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestVaultService_Params_OwnerTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.Params(context.Background(), strings.Repeat("a", 256))

	assert.ErrorIs(t, err, ErrValidation)
}

// ── Verify ───────────────────────────────────────────────────────────────────

func TestVaultService_Verify(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		want     bool
	}{
		{name: "match", provided: "stored-hash", want: true},
		{name: "mismatch", provided: "other-hash", want: false},
		{name: "prefix of stored", provided: "stored", want: false},
		{name: "case differs", provided: "STORED-HASH", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestVaultSvc(t, ctrl)
			repo.EXPECT().Get(gomock.Any(), "alice").Return(models.VaultMetadata{OwnerID: "alice", KDFSalt: "s", AuthHash: "stored-hash"}, nil)

			got, err := svc.Verify(context.Background(), "alice", tt.provided)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVaultService_Verify_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestVaultSvc(t, ctrl)
	repo.EXPECT().Get(gomock.Any(), "bob").Return(models.VaultMetadata{}, store.ErrVaultNotFound)

	ok, err := svc.Verify(context.Background(), "bob", "h")

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVaultService_Verify_BlankHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestVaultSvc(t, ctrl)

	ok, err := svc.Verify(context.Background(), "alice", "")

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrValidation)
}
