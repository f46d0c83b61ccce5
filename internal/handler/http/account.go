// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/PandorAura/PasswordVault/internal/app"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/utils"
)

// masterPasswordHeader carries the client-derived auth hash that gates
// account deletion. It is never logged.
const masterPasswordHeader = "X-Master-Password"

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	presentedHash := r.Header.Get(masterPasswordHeader)
	if presentedHash == "" {
		logger.FromRequest(r).Warn().Msg(app.MsgMissingMasterPassword)
		utils.WriteJSONError(w, app.MsgMissingMasterPassword, http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.DeleteAccount(r.Context(), ownerID, presentedHash); err != nil {
		writeError(w, r, err, "account deletion failed")
		return
	}

	logger.FromRequest(r).Info().Msg("account deleted")
	w.WriteHeader(http.StatusNoContent)
}
