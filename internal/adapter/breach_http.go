// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/PandorAura/PasswordVault/internal/config"
	"github.com/PandorAura/PasswordVault/internal/logger"
	"github.com/PandorAura/PasswordVault/internal/utils"
)

const (
	headerUserAgent  = "User-Agent"
	headerAddPadding = "Add-Padding"
	headerAPIKey     = "hibp-api-key"
	headerAccept     = "Accept"
)

type httpBreachProvider struct {
	client *utils.HTTPClient

	rangeURL  string
	apiBase   string
	apiKey    string
	userAgent string

	logger *logger.Logger
}

// NewHTTPBreachProvider constructs the resty-backed [BreachProvider]. The dial
// and whole-request bounds come from cfg; retries are disabled.
func NewHTTPBreachProvider(cfg config.Breach, logger *logger.Logger) BreachProvider {
	return &httpBreachProvider{
		client:    utils.NewHTTPClient(cfg.ConnectTimeout, cfg.RequestTimeout),
		rangeURL:  strings.TrimRight(cfg.RangeURL, "/"),
		apiBase:   strings.TrimRight(cfg.APIBase, "/"),
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Range implements [BreachProvider]. It calls GET {rangeURL}/{prefix} with
// response padding enabled and returns the body untouched.
func (h *httpBreachProvider) Range(ctx context.Context, prefix string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(headerUserAgent, h.userAgent).
		SetHeader(headerAddPadding, "true").
		SetPathParam("prefix", prefix).
		Get(h.rangeURL + "/{prefix}")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("prefix", prefix).Msg("range request failed")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Warn().Int("status", resp.StatusCode()).Str("prefix", prefix).Msg("range request rejected upstream")
		return nil, err
	}

	return resp.Body(), nil
}

// BreachedAccount implements [BreachProvider]. It calls
// GET {apiBase}/breachedaccount/{account}?truncateResponse=false with the
// account path-escaped.
func (h *httpBreachProvider) BreachedAccount(ctx context.Context, account string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(headerUserAgent, h.userAgent).
		SetHeader(headerAPIKey, h.apiKey).
		SetHeader(headerAccept, "application/json").
		SetPathParam("account", account).
		SetQueryParam("truncateResponse", "false").
		Get(h.apiBase + "/breachedaccount/{account}")
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("breached account request failed")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Debug().Int("status", resp.StatusCode()).Msg("breached account request returned non-2xx")
		return nil, err
	}

	return resp.Body(), nil
}
