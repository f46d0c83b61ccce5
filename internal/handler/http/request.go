// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PandorAura/PasswordVault/internal/app"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/utils"
)

// decodeJSON reads a size-limited JSON body into dst. On failure it has
// already answered 400 and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteJSONError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

// ownerFromRequest returns the owner id stored by the auth middleware. On
// failure it has already answered 401 and returns false.
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Err(ErrNoOwnerInContext).Send()
		utils.WriteJSONError(w, app.MsgUnauthenticated, http.StatusUnauthorized)
		return "", false
	}
	return ownerID, true
}

// queryInt parses an optional integer query parameter, returning def when it
// is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidQueryParameter, name, raw)
	}
	return n, nil
}
