// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/PandorAura/PasswordVault/internal/app"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/utils"
)

// auth resolves the bearer token through the identity service and stores
// the caller's owner id in the request context. Every failure is a 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSONError(w, app.MsgEmptyAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Msg(ErrInvalidAuthorizationHeader.Error())
			utils.WriteJSONError(w, app.MsgInvalidAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		token, err := h.services.IdentityService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("bearer token rejected")
			utils.WriteJSONError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithOwnerID(r.Context(), token.OwnerID)))
	})
}
