// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers use the resty request API
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client whose TCP dial is bounded by
// connectTimeout and whose whole request, body included, is bounded by
// requestTimeout. Zero disables the respective bound. Requests are attempted
// exactly once; redirects are followed.
func NewHTTPClient(connectTimeout, requestTimeout time.Duration) *HTTPClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext

	client := resty.New().
		SetTransport(transport).
		SetTimeout(requestTimeout).
		SetRetryCount(0).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))

	return &HTTPClient{Client: client}
}
