// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/PandorAura/PasswordVault/internal/app"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/utils"
	"github.com/PandorAura/PasswordVault/models"
)

func (h *Handler) vaultSetup(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var req models.VaultSetupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.VaultService.Setup(r.Context(), ownerID, req.ResolvedSalt(), req.AuthHash); err != nil {
		writeError(w, r, err, "vault setup failed")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// vaultParams is public: the salt is needed before the caller can prove
// anything. "email" is accepted as an alias of "owner".
func (h *Handler) vaultParams(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ownerID := strings.TrimSpace(query.Get("owner"))
	if ownerID == "" {
		ownerID = strings.TrimSpace(query.Get("email"))
	}
	if ownerID == "" {
		logger.FromRequest(r).Warn().Msg(app.MsgMissingOwner)
		utils.WriteJSONError(w, app.MsgMissingOwner, http.StatusBadRequest)
		return
	}

	params, err := h.services.VaultService.Params(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err, "reading vault params failed")
		return
	}

	_, _ = utils.WriteJSON(w, params, http.StatusOK)
}

func (h *Handler) vaultVerify(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var req models.VaultVerifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	valid, err := h.services.VaultService.Verify(r.Context(), ownerID, req.AuthHash)
	if err != nil {
		writeError(w, r, err, "vault verification failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.VaultVerifyResponse{Valid: valid}, http.StatusOK)
}
