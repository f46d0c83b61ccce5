// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/PandorAura/PasswordVault/internal/app"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/service"
	"github.com/PandorAura/PasswordVault/internal/utils"
)

var kindStatusMap = map[service.Kind]int{
	service.ErrValidation:        http.StatusBadRequest,
	service.ErrUnauthenticated:   http.StatusUnauthorized,
	service.ErrForbidden:         http.StatusForbidden,
	service.ErrNotFound:          http.StatusNotFound,
	service.ErrAlreadyConfigured: http.StatusConflict,
	service.ErrNotConfigured:     http.StatusNotFound,
	service.ErrUpstream:          http.StatusBadGateway,
	service.ErrUnavailable:       http.StatusServiceUnavailable,
	service.ErrInternal:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if status, ok := kindStatusMap[service.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text placed in the error envelope. Causes of
// internal and storage failures stay in the logs.
func messageFromError(err error) string {
	switch service.KindOf(err) {
	case service.ErrInternal:
		return app.MsgInternalServerError
	case service.ErrUnavailable:
		return app.MsgStorageUnavailable
	case service.ErrUnauthenticated:
		return app.MsgUnauthenticated
	case service.ErrForbidden:
		return app.MsgAccessDenied
	case service.ErrNotConfigured:
		return app.MsgVaultNotConfigured
	case service.ErrAlreadyConfigured:
		return app.MsgVaultAlreadyConfigured
	case service.ErrNotFound:
		return app.MsgDataNotFound
	default:
		return err.Error()
	}
}

// writeError logs err at a level matching its kind and writes the JSON error
// envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteJSONError(w, messageFromError(err), status)
}
