// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/PandorAura/PasswordVault/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestBreachRange(t *testing.T) {
	for _, target := range []string{"/api/breaches/range/ABCDE", "/api/breaches/pwnedpasswords/range/ABCDE"} {
		t.Run(target, func(t *testing.T) {
			breach := &mockBreachService{
				rangeFn: func(_ context.Context, prefix string) ([]byte, error) {
					assert.Equal(t, "ABCDE", prefix)
					return []byte("0018A45C4D1DEF81644B54AB7F969B88D65:1\r\n"), nil
				},
			}
			router := newTestRouter(t, &service.Services{BreachService: breach})

			rec := doRequest(t, router, http.MethodGet, target, "", false)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
			assert.Equal(t, "0018A45C4D1DEF81644B54AB7F969B88D65:1\r\n", rec.Body.String())
		})
	}
}

func TestBreachRange_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "bad prefix", err: fmt.Errorf("%w: prefix", service.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "upstream down", err: fmt.Errorf("%w: HTTP 503", service.ErrUpstream), wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breach := &mockBreachService{
				rangeFn: func(context.Context, string) ([]byte, error) { return nil, tt.err },
			}
			router := newTestRouter(t, &service.Services{BreachService: breach})

			rec := doRequest(t, router, http.MethodGet, "/api/breaches/range/zzzzz", "", false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Cache-Control"))
		})
	}
}

func TestBreachedAccount(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantAccount string
	}{
		{name: "plain", target: "/api/breaches/account/alice@example.com", wantAccount: "alice@example.com"},
		{name: "escaped", target: "/api/breaches/account/a%2Bb@example.com", wantAccount: "a+b@example.com"},
		{name: "original alias", target: "/api/breaches/hibp/breachedaccount/alice@example.com", wantAccount: "alice@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breach := &mockBreachService{
				accountFn: func(_ context.Context, account string) ([]byte, error) {
					assert.Equal(t, tt.wantAccount, account)
					return []byte("[]"), nil
				},
			}
			router := newTestRouter(t, &service.Services{BreachService: breach})

			rec := doRequest(t, router, http.MethodGet, tt.target, "", false)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "[]", rec.Body.String())
		})
	}
}

func TestBreachedAccount_Upstream(t *testing.T) {
	breach := &mockBreachService{
		accountFn: func(context.Context, string) ([]byte, error) {
			return nil, fmt.Errorf("%w: HTTP 429", service.ErrUpstream)
		},
	}
	router := newTestRouter(t, &service.Services{BreachService: breach})

	rec := doRequest(t, router, http.MethodGet, "/api/breaches/account/alice@example.com", "", false)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, decodeErrorBody(t, rec).Error, "HTTP 429")
}
