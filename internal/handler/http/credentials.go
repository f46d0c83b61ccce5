// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/PandorAura/PasswordVault/internal/app"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/utils"
	"github.com/PandorAura/PasswordVault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	query, err := listQueryFromRequest(r)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg(app.MsgInvalidQueryParameter)
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.services.CredentialService.List(r.Context(), ownerID, query)
	if err != nil {
		writeError(w, r, err, "listing credentials failed")
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}

// listQueryFromRequest reads the listing parameters. An absent page means
// the first page and an absent size means [models.DefaultPageSize]; range
// checks are left to the service.
func listQueryFromRequest(r *http.Request) (models.ListQuery, error) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		return models.ListQuery{}, err
	}
	size, err := queryInt(r, "size", models.DefaultPageSize)
	if err != nil {
		return models.ListQuery{}, err
	}

	q := r.URL.Query()
	return models.ListQuery{
		Page:      page,
		Size:      size,
		SortBy:    q.Get("sortBy"),
		Direction: q.Get("direction"),
		Search:    q.Get("search"),
		Category:  q.Get("category"),
	}, nil
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	entry, err := h.services.CredentialService.Get(r.Context(), chi.URLParam(r, "id"), ownerID)
	if err != nil {
		writeError(w, r, err, "reading credential failed")
		return
	}

	_, _ = utils.WriteJSON(w, entry.View(), http.StatusOK)
}

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var input models.CredentialInput
	if !decodeJSON(w, r, &input) {
		return
	}

	entry, err := h.services.CredentialService.Create(r.Context(), ownerID, input)
	if err != nil {
		writeError(w, r, err, "creating credential failed")
		return
	}

	_, _ = utils.WriteJSON(w, entry.View(), http.StatusCreated)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var input models.CredentialInput
	if !decodeJSON(w, r, &input) {
		return
	}

	entry, err := h.services.CredentialService.Update(r.Context(), chi.URLParam(r, "id"), ownerID, input)
	if err != nil {
		writeError(w, r, err, "updating credential failed")
		return
	}

	_, _ = utils.WriteJSON(w, entry.View(), http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.CredentialService.Delete(r.Context(), chi.URLParam(r, "id"), ownerID); err != nil {
		writeError(w, r, err, "deleting credential failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
