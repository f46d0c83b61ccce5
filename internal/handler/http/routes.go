// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/PandorAura/PasswordVault/internal/app"
	"github.com/PandorAura/PasswordVault/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router with every API route and the shared
// middleware chain.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/vault/params", h.vaultParams)

		r.Get("/api/breaches/range/{prefix}", h.breachRange)
		r.Get("/api/breaches/pwnedpasswords/range/{prefix}", h.breachRange)
		r.Get("/api/breaches/account/{account}", h.breachedAccount)
		r.Get("/api/breaches/hibp/breachedaccount/{account}", h.breachedAccount)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/vault/setup", h.vaultSetup)
		r.Post("/api/vault/verify", h.vaultVerify)
		r.Delete("/api/account", h.deleteAccount)

		r.Get("/api/credentials", h.listCredentials)
		r.Post("/api/credentials", h.createCredential)
		r.Get("/api/credentials/{id}", h.getCredential)
		r.Put("/api/credentials/{id}", h.updateCredential)
		r.Delete("/api/credentials/{id}", h.deleteCredential)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, app.MsgRouteNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
