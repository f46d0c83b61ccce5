// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrNotFound is returned for an upstream 404.
	ErrNotFound = errors.New("upstream resource not found")
	// ErrUpstreamStatus is returned for any other non-2xx status. The
	// wrapped message carries "HTTP <status>".
	ErrUpstreamStatus = errors.New("upstream returned an error status")
	// ErrTransport is returned when no response was received at all.
	ErrTransport = errors.New("upstream request failed")
)
