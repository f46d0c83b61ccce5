// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/PandorAura/PasswordVault/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		writeError(w, r, err, "health check failed")
		return
	}

	_, _ = utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
