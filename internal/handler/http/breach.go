// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// breachRange proxies a k-anonymity range lookup. The body is passed
// through as text and may be cached by intermediaries.
func (h *Handler) breachRange(w http.ResponseWriter, r *http.Request) {
	body, err := h.services.BreachService.RangeQuery(r.Context(), chi.URLParam(r, "prefix"))
	if err != nil {
		writeError(w, r, err, "breach range query failed")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if h.cacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.cacheMaxAge))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// breachedAccount proxies an account lookup. chi hands back the escaped
// segment when the path carries percent-escapes, so it is unescaped here and
// escaped once more by the provider.
func (h *Handler) breachedAccount(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")
	if unescaped, err := url.PathUnescape(account); err == nil {
		account = unescaped
	}

	body, err := h.services.BreachService.BreachedAccount(r.Context(), account)
	if err != nil {
		writeError(w, r, err, "breached account lookup failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
